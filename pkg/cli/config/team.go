package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/workboard/pkg/domain/model"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// Team holds the team directory configuration
type Team struct {
	PhotosFile string
}

// Flags returns CLI flags for Team configuration
func (t *Team) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "team-photos",
			Usage:       "YAML file mapping person names to photo files",
			Category:    "Team",
			Sources:     cli.EnvVars("WORKBOARD_TEAM_PHOTOS"),
			Destination: &t.PhotosFile,
		},
	}
}

// Configure loads the photo mapping, or returns nil when no file is set
func (t *Team) Configure() (*model.TeamPhotos, error) {
	if t.PhotosFile == "" {
		return nil, nil
	}
	return LoadTeamPhotos(t.PhotosFile)
}

// LoadTeamPhotos loads the person to photo mapping from YAML file
func LoadTeamPhotos(path string) (*model.TeamPhotos, error) {
	if path == "" {
		return nil, goerr.New("team photos file path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, goerr.Wrap(err, "team photos file not found",
				goerr.V("path", path))
		}
		return nil, goerr.Wrap(err, "failed to read team photos file",
			goerr.V("path", path))
	}

	var photos model.TeamPhotos
	if err := yaml.Unmarshal(data, &photos); err != nil {
		return nil, goerr.Wrap(err, "failed to parse YAML team photos",
			goerr.V("path", path))
	}

	for name, photo := range photos.Photos {
		if name == "" || photo == "" {
			return nil, goerr.New("team photo entry requires both name and file",
				goerr.V("path", path),
				goerr.V("name", name))
		}
	}

	return &photos, nil
}
