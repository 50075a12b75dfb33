package dataset

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/parquet-go/parquet-go"
	"github.com/parquet-go/parquet-go/compress/zstd"
)

const parquetSchema = "langton_result_v1"

// Row is the flat, columnar form of a Result. The initial grid is not
// exported; HasInitialGrid records whether one was used.
type Row struct {
	RunID            string `parquet:"run_id,dict"`
	Index            int32  `parquet:"index"`
	Seed             int64  `parquet:"seed"`
	StartX           int32  `parquet:"start_x"`
	StartY           int32  `parquet:"start_y"`
	StartDirection   int32  `parquet:"start_direction"`
	GridSize         int32  `parquet:"grid_size"`
	HasInitialGrid   bool   `parquet:"has_initial_grid"`
	HighwayDirection string `parquet:"highway_direction,dict,optional"`
	StepsToHighway   int64  `parquet:"steps_to_highway"`
	GridExpansions   int32  `parquet:"grid_expansions"`
	FinalWidth       int32  `parquet:"final_width"`
	FinalHeight      int32  `parquet:"final_height"`
	Timestamp        string `parquet:"timestamp"`
}

// NewRow flattens r.
func NewRow(r Result) Row {
	row := Row{
		RunID:          r.RunID,
		Index:          int32(r.Index),
		Seed:           r.Seed,
		StartX:         int32(r.Config.StartPosition[0]),
		StartY:         int32(r.Config.StartPosition[1]),
		StartDirection: int32(r.Config.StartDirection),
		GridSize:       int32(r.Config.GridSize),
		HasInitialGrid: r.Config.InitialGrid != nil,
		StepsToHighway: int64(r.StepsToHighway),
		GridExpansions: int32(r.GridExpansions),
		FinalWidth:     int32(r.FinalGridSize[0]),
		FinalHeight:    int32(r.FinalGridSize[1]),
		Timestamp:      r.Timestamp,
	}
	if r.HighwayDirection != nil {
		row.HighwayDirection = *r.HighwayDirection
	}
	return row
}

// Result rebuilds a Result without its initial grid.
func (row Row) Result() Result {
	r := Result{
		RunID: row.RunID,
		Index: int(row.Index),
		Seed:  row.Seed,
		Config: Config{
			StartPosition:  [2]int{int(row.StartX), int(row.StartY)},
			StartDirection: int(row.StartDirection),
			GridSize:       int(row.GridSize),
		},
		StepsToHighway: int(row.StepsToHighway),
		GridExpansions: int(row.GridExpansions),
		FinalGridSize:  [2]int{int(row.FinalWidth), int(row.FinalHeight)},
		Timestamp:      row.Timestamp,
	}
	if row.HighwayDirection != "" {
		dir := row.HighwayDirection
		r.HighwayDirection = &dir
	}
	return r
}

// ExportParquet writes results to a zstd-compressed parquet file.
func ExportParquet(outPath string, results []Result) error {
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	rows := make([]Row, len(results))
	for i, r := range results {
		rows[i] = NewRow(r)
	}

	tmpPath := outPath + ".tmp"
	_ = os.Remove(tmpPath)

	if err := parquet.WriteFile(tmpPath, rows,
		parquet.Compression(&zstd.Codec{Level: zstd.SpeedBetterCompression}),
		parquet.KeyValueMetadata("schema", parquetSchema),
	); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("write parquet: %w", err)
	}
	if err := os.Rename(tmpPath, outPath); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename parquet: %w", err)
	}
	return nil
}

// ReadParquet loads every row of a file written by ExportParquet.
func ReadParquet(path string) ([]Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, err
	}
	pf, err := parquet.OpenFile(f, stat.Size())
	if err != nil {
		return nil, fmt.Errorf("open parquet %s: %w", path, err)
	}
	if schema, ok := pf.Lookup("schema"); ok && schema != parquetSchema {
		return nil, fmt.Errorf("parquet %s: unexpected schema %q", path, schema)
	}

	reader := parquet.NewGenericReader[Row](pf)
	defer reader.Close()

	results := make([]Result, 0, reader.NumRows())
	buf := make([]Row, 256)
	for {
		n, err := reader.Read(buf)
		for _, row := range buf[:n] {
			results = append(results, row.Result())
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read parquet %s: %w", path, err)
		}
		if n == 0 {
			break
		}
	}
	return results, nil
}
