package grid

import (
	"encoding/json"
	"fmt"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

func encode(grid *domain.Grid) ([]byte, error) {
	data, err := json.Marshal(grid)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncode, err)
	}
	return data, nil
}

func decode(data []byte) (*domain.Grid, error) {
	var grid domain.Grid
	if err := json.Unmarshal(data, &grid); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return &grid, nil
}
