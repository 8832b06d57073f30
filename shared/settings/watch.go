package settings

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	log "github.com/sirupsen/logrus"
)

// WatchConfig loads the configuration, hands it to the callback and keeps calling the callback
// every time the configuration or secrets file changes until ctx is done. Reload failures are
// logged and the previous configuration stays in effect.
func WatchConfig(ctx context.Context, configPath string, secretsPath string, callback func(Config) error) error {
	cfg, err := Load(configPath, secretsPath)
	if err != nil {
		return err
	}
	if err := callback(*cfg); err != nil {
		return err
	}

	watched := map[string]bool{}
	for _, p := range []string{configPath, secretsPath} {
		if p != "" {
			watched[filepath.Clean(p)] = true
		}
	}
	if len(watched) == 0 {
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	dirs := map[string]bool{}
	for p := range watched {
		dir := filepath.Dir(p)
		if dirs[dir] {
			continue
		}
		// directories are watched because editors and config mounts replace files
		if err := watcher.Add(dir); err != nil {
			_ = watcher.Close()
			return err
		}
		dirs[dir] = true
	}

	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if !watched[filepath.Clean(event.Name)] || event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				cfg, err := Load(configPath, secretsPath)
				if err != nil {
					log.Warnf("Failed to reload configuration: %v", err)
					continue
				}
				if err := callback(*cfg); err != nil {
					log.Warnf("Failed to apply configuration: %v", err)
					continue
				}
				log.Infof("Configuration reloaded from %s", event.Name)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Warnf("Configuration watcher error: %v", err)
			}
		}
	}()
	return nil
}
