package utils

import (
	"os"
	"runtime"
	"strings"
)

const (
	// OS:
	WindowsOS = "windows"
	LinuxOS   = "linux"
	MacOS     = "darwin"
)

const (
	DbFileName = "mockdata.db"
)

// DefaultDbPath is where `mockdata load` writes the reference data when no path is configured.
func DefaultDbPath() string {
	return GetOsSpecificDbDir() + DbFileName
}

func GetOsSpecificDbDir() string {
	return getOsSpecificAppDataDir() + "db" + string(os.PathSeparator)
}

// based on this answer: https://stackoverflow.com/a/68740581
func getOsSpecificAppDataDir() string {
	osType := DetectOsType()
	switch osType {
	case MacOS:
		homeDir := os.Getenv("HOME")
		if homeDir != "" {
			return homeDir + "/Library/Application Support/mockdata/"
		}
		return ""
	case LinuxOS:
		// from XDG Base Directory Specification: https://specifications.freedesktop.org/basedir-spec/basedir-spec-latest.html
		dataHome := os.Getenv("XDG_DATA_HOME")
		if dataHome != "" {
			return sanitize(dataHome) + "mockdata/"
		}

		homeDir := os.Getenv("HOME")
		if homeDir != "" {
			return sanitize(homeDir) + ".local/share/mockdata/"
		}
		return ""
	case WindowsOS:
		localAppData := os.Getenv("LOCALAPPDATA")
		if localAppData != "" {
			return sanitize(localAppData) + "mockdata" + string(os.PathSeparator)
		}

		appData := os.Getenv("APPDATA")
		if appData != "" {
			return sanitize(appData) + "mockdata" + string(os.PathSeparator)
		}
		return ""
	default:
		return ""
	}
}

func DetectOsType() string {
	return runtime.GOOS
}

func sanitize(path string) string {
	if strings.HasSuffix(path, string(os.PathSeparator)) {
		return path
	} else {
		return path + string(os.PathSeparator)
	}
}
