package platform

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
)

// Commands used to open files with the default application
const (
	OpenCommand    = "open"
	XDGOpenCommand = "xdg-open"
	CmdCommand     = "cmd"
	WindowsCmdFlag = "/c"
	StartCommand   = "start"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// TempFilePrefix prefixes every temp file written for a downloaded model.
const TempFilePrefix = "thingibrowser-"

// WriteTempFile writes data to a fresh temp file whose name ends in fileName,
// so the importing application can recognise the file type from its
// extension. Returns the full path of the written file. Cleanup of the temp
// file is left to the operating system.
func WriteTempFile(data []byte, fileName string) (string, error) {
	// The base name strips any path components a hostile file name may carry.
	pattern := TempFilePrefix + "*-" + filepath.Base(fileName)

	file, err := os.CreateTemp("", pattern)
	if err != nil {
		return "", fmt.Errorf("creating temp file: %w", err)
	}
	if _, err := file.Write(data); err != nil {
		file.Close()
		return "", fmt.Errorf("writing temp file: %w", err)
	}
	if err := file.Close(); err != nil {
		return "", fmt.Errorf("closing temp file: %w", err)
	}
	return file.Name(), nil
}

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// CopyFile copies the file at src to dst, creating dst's directory if needed.
func CopyFile(src, dst string) error {
	if err := CreateDirectoryIfNotExists(filepath.Dir(dst)); err != nil {
		return fmt.Errorf("creating destination directory: %w", err)
	}

	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("opening source file: %w", err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("creating destination file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("copying file: %w", err)
	}
	return out.Sync()
}

// GetDefaultModelsDir returns the directory downloaded models are imported
// into when running standalone.
func GetDefaultModelsDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, "Models"), nil
}

// OpenFileWithDefaultApp opens the file with the default system application
func OpenFileWithDefaultApp(filePath string) error {
	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}
	if _, err := os.Stat(absPath); err != nil {
		return fmt.Errorf("file does not exist: %w", err)
	}

	switch runtime.GOOS {
	case OSDarwin:
		return exec.Command(OpenCommand, absPath).Run()
	case OSWindows:
		return exec.Command(CmdCommand, WindowsCmdFlag, StartCommand, "", absPath).Run()
	case OSLinux:
		return exec.Command(XDGOpenCommand, absPath).Run()
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}

// UniqueDestination returns dst if it does not exist yet, otherwise a
// "name (n).ext" variant that does not collide with an existing file.
func UniqueDestination(dst string) string {
	if _, err := os.Stat(dst); os.IsNotExist(err) {
		return dst
	}

	ext := filepath.Ext(dst)
	base := strings.TrimSuffix(dst, ext)
	for i := 1; ; i++ {
		candidate := fmt.Sprintf("%s (%d)%s", base, i, ext)
		if _, err := os.Stat(candidate); os.IsNotExist(err) {
			return candidate
		}
	}
}
