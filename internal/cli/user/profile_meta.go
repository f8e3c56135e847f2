package user

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// ProfileMeta contains the name and full filepath of a profile
type ProfileMeta struct {
	Name     string
	Filepath string
}

// Profiles returns a list of each profile meta found in the CLI home directory
func Profiles() ([]ProfileMeta, error) {
	dir, dirErr := HomeDir()
	if dirErr != nil {
		return nil, fmt.Errorf("failed to get CLI profiles: %w", dirErr)
	}
	return ProfilesIn(afero.NewOsFs(), dir)
}

// ProfilesIn returns a list of each profile meta found in the provided directory
func ProfilesIn(fs afero.Fs, dir string) ([]ProfileMeta, error) {
	exists, err := afero.DirExists(fs, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to get CLI profiles: %w", err)
	}
	if !exists {
		return nil, nil
	}

	entries, err := afero.ReadDir(fs, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to get CLI profiles: %w", err)
	}

	profileMetas := make([]ProfileMeta, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != "."+ProfileType {
			continue
		}
		profileMetas = append(profileMetas, ProfileMeta{
			Name:     strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name())),
			Filepath: filepath.Join(dir, entry.Name()),
		})
	}

	return profileMetas, nil
}
