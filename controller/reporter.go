package controller

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"sync/atomic"

	"github.com/antonmedv/expr/vm"
	log "github.com/sirupsen/logrus"

	"github.com/argoproj-labs/matrix-build-notifications/pkg/build"
	"github.com/argoproj-labs/matrix-build-notifications/pkg/message"
	"github.com/argoproj-labs/matrix-build-notifications/pkg/repo"
	"github.com/argoproj-labs/matrix-build-notifications/pkg/services"
	"github.com/argoproj-labs/matrix-build-notifications/pkg/templates"
	"github.com/argoproj-labs/matrix-build-notifications/shared/settings"
)

const matrixServiceName = "matrix"

// snapshot is the immutable state an event is processed with.
type snapshot struct {
	cfg      settings.Config
	renderer templates.Renderer
	service  services.NotificationService
	filter   *vm.Program
}

// Reporter turns build events into room notifications. Failures are logged and counted,
// never returned to the caller.
type Reporter struct {
	current         atomic.Pointer[snapshot]
	metricsRegistry *controllerRegistry
}

func NewReporter(metricsRegistry *controllerRegistry) *Reporter {
	return &Reporter{metricsRegistry: metricsRegistry}
}

// Configure replaces the configuration. Events already being processed keep the previous one.
func (r *Reporter) Configure(cfg settings.Config, service services.NotificationService) error {
	renderer, err := templates.NewService(cfg.Templates())
	if err != nil {
		return err
	}
	filter, err := compileFilter(cfg.Filter)
	if err != nil {
		return fmt.Errorf("failed to compile filter: %v", err)
	}
	r.current.Store(&snapshot{cfg: cfg, renderer: renderer, service: service, filter: filter})
	return nil
}

// Report sends one notification per source stamp of the event. Stamps are processed in
// order and a failing stamp does not prevent the following ones from being notified.
func (r *Reporter) Report(ctx context.Context, event build.Event) {
	snap := r.current.Load()
	if snap == nil {
		log.Warn("Reporter is not configured, dropping build event")
		return
	}
	r.metricsRegistry.IncEventsCounter(event.Complete)

	props := event.Properties.Clone()
	event.Properties = props
	builder, _ := props.GetString("buildername")
	logEntry := log.WithFields(log.Fields{"builder": builder, "url": event.URL})

	state := build.MapState(event.Complete, event.Result, snap.cfg.WarningAsSuccess)

	descriptionTemplate := templates.StartDescriptionTemplate
	if event.Complete {
		descriptionTemplate = templates.EndDescriptionTemplate
	}
	description, err := snap.renderer.Render(descriptionTemplate, props)
	if err != nil {
		logEntry.Warnf("Failed to render %s: %v", descriptionTemplate, err)
		description = ""
	}

	buildContext, err := templates.ResolveContext(snap.renderer, props)
	if err != nil {
		logEntry.Errorf("Failed to render context, notification for room %s is skipped: %v", snap.cfg.RoomID, err)
		return
	}

	if !passesFilter(snap.filter, filterVars(event, state), logEntry) {
		logEntry.Infof("Build event filtered out")
		return
	}

	overrides := build.OverridesFromProperties(props)
	for i := range event.SourceStamps {
		stamp := event.SourceStamps[i]
		if stamp.Revision == nil {
			logEntry.Debugf("Source stamp %s has no revision, skipping", stamp.RepositoryURL)
			continue
		}
		r.notify(ctx, snap, logEntry.WithField("revision", *stamp.Revision), message.Input{
			State:       state,
			Context:     buildContext,
			Repository:  repo.Resolve(overrides, stamp.RepositoryURL),
			Revision:    *stamp.Revision,
			TargetURL:   event.URL,
			Description: description,
		})
	}
}

func (r *Reporter) notify(ctx context.Context, snap *snapshot, logEntry *log.Entry, in message.Input) {
	defer func() {
		if rec := recover(); rec != nil {
			logEntry.Errorf("Recovered from panic while notifying room %s: %+v\n%s", snap.cfg.RoomID, rec, debug.Stack())
			r.metricsRegistry.IncDeliveriesCounter(in.State, false)
		}
	}()

	logEntry = logEntry.WithField("repo", in.Repository.FullName())
	if in.State == build.StatePending && snap.cfg.OnlyEndState {
		logEntry.Debugf("Only end states are reported, skipping %s notification", in.State)
		return
	}

	msg := message.Format(in)
	notification := services.Notification{
		Message:          msg.PlainBody,
		FormattedMessage: msg.RichBody,
		Color:            msg.Color,
	}
	logEntry.Debugf("Sending notification '%s'", notification.Preview())
	err := snap.service.Send(ctx, notification, services.Destination{Service: matrixServiceName, Recipient: snap.cfg.RoomID})

	var deliveryErr *services.DeliveryError
	switch {
	case errors.As(err, &deliveryErr):
		logEntry.Errorf("Failed to send notification to room %s, code %d: %s", snap.cfg.RoomID, deliveryErr.StatusCode, deliveryErr.Message)
		r.metricsRegistry.IncDeliveriesCounter(in.State, false)
	case err != nil:
		logEntry.Errorf("Failed to send notification to room %s: %v", snap.cfg.RoomID, err)
		r.metricsRegistry.IncDeliveriesCounter(in.State, false)
	default:
		if snap.cfg.Verbose {
			logEntry.Infof("Notification %s was sent to room %s", in.State, snap.cfg.RoomID)
		} else {
			logEntry.Debugf("Notification %s was sent to room %s", in.State, snap.cfg.RoomID)
		}
		r.metricsRegistry.IncDeliveriesCounter(in.State, true)
	}
}
