package reveal

import "github.com/lumipallolabs/rms/internal/logging"

// Darwin reveals paths in Finder
type Darwin struct {
	launcher Launcher
}

func (d *Darwin) Reveal(path string) error {
	if err := checkPath(path); err != nil {
		return err
	}
	logging.Reveal.Debug().Str("path", path).Msg("open -R")

	if err := d.launcher.Start("open", "-R", path); err != nil {
		return spawnError("open", path, err)
	}
	return nil
}
