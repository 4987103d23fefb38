package host

import (
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/thingibrowser/thingibrowser/internal/platform"
)

// Mesh file types the standalone app imports. Mirrors what common slicers
// accept as printable geometry.
var localSupportedExtensions = []string{"stl", "obj", "3mf", "ply", "x3d", "gltf", "glb", "amf"}

// LocalApplication implements Application when the browser runs as its own
// desktop app instead of inside a slicer: importing a model means copying it
// into the configured models directory and opening it with the system
// default application.
type LocalApplication struct {
	modelsDir string
	logger    zerolog.Logger

	// openFile is swappable in tests to avoid launching real applications.
	openFile func(path string) error
}

// NewLocalApplication creates a LocalApplication importing into modelsDir.
func NewLocalApplication(modelsDir string, logger zerolog.Logger) *LocalApplication {
	return &LocalApplication{
		modelsDir: modelsDir,
		logger:    logger,
		openFile:  platform.OpenFileWithDefaultApp,
	}
}

// SupportedFileExtensions returns the mesh types the local app imports.
func (a *LocalApplication) SupportedFileExtensions() []string {
	extensions := make([]string, len(localSupportedExtensions))
	copy(extensions, localSupportedExtensions)
	return extensions
}

// LoadModel copies the downloaded file into the models directory and opens
// it. The temp file the path points at keeps the original file name as a
// suffix, which is preserved in the destination name.
func (a *LocalApplication) LoadModel(path string) error {
	name := filepath.Base(path)
	destination := platform.UniqueDestination(filepath.Join(a.modelsDir, name))

	if err := platform.CopyFile(path, destination); err != nil {
		return fmt.Errorf("importing model: %w", err)
	}
	a.logger.Info().Str("path", destination).Msg("Model imported")

	// Best effort: the import succeeded even if nothing can display it.
	if err := a.openFile(destination); err != nil {
		a.logger.Warn().Err(err).Str("path", destination).Msg("Could not open imported model")
	}
	return nil
}
