package reveal

import "github.com/lumipallolabs/rms/internal/logging"

// Windows reveals paths in Explorer
type Windows struct {
	launcher Launcher
}

func (w *Windows) Reveal(path string) error {
	if err := checkPath(path); err != nil {
		return err
	}
	logging.Reveal.Debug().Str("path", path).Msg("explorer /select")

	// The comma after /select is part of the switch
	if err := w.launcher.Start("explorer", "/select,", path); err != nil {
		return spawnError("explorer", path, err)
	}
	return nil
}
