package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/workboard/pkg/repository"
	"gopkg.in/yaml.v3"
)

// workbookFile is the YAML layout of a demo workbook. Cells are kept as raw
// scalar text so that dates and numbers reach the parser as typed in the file.
type workbookFile struct {
	Sheets map[string][][]yaml.Node `yaml:"sheets"`
}

// LoadWorkbook loads a demo workbook from YAML file
func LoadWorkbook(path string) (*repository.Memory, error) {
	if path == "" {
		return nil, goerr.New("workbook file path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, goerr.Wrap(err, "workbook file not found",
				goerr.V("path", path))
		}
		return nil, goerr.Wrap(err, "failed to read workbook file",
			goerr.V("path", path))
	}

	var file workbookFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, goerr.Wrap(err, "failed to parse YAML workbook",
			goerr.V("path", path))
	}

	if len(file.Sheets) == 0 {
		return nil, goerr.New("workbook has no sheets", goerr.V("path", path))
	}

	grids := make(map[string][][]string, len(file.Sheets))
	for name, rows := range file.Sheets {
		grid := make([][]string, len(rows))
		for i, row := range rows {
			grid[i] = make([]string, len(row))
			for j, cell := range row {
				if cell.Kind != yaml.ScalarNode {
					return nil, goerr.New("workbook cell must be a scalar",
						goerr.V("path", path),
						goerr.V("sheet", name),
						goerr.V("row", i+1),
						goerr.V("column", j+1))
				}
				grid[i][j] = cell.Value
			}
		}
		grids[name] = grid
	}

	return repository.NewMemory(grids), nil
}
