package render

import (
	"bytes"
	"errors"
	"testing"

	"indicomp/internal/charts"
	"indicomp/internal/models"
)

var pngSignature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func sampleDataset(t *testing.T) *models.Dataset {
	t.Helper()

	ds := models.NewDataset(models.CountryScope(), []string{"GDP", "Life", "Pop"})
	ds.Add(models.Entity{Name: "United States"}, map[string]models.Value{
		"GDP": models.Of(80000), "Life": models.Of(77), "Pop": models.Of(330e6),
	})
	ds.Add(models.Entity{Name: "Germany"}, map[string]models.Value{
		"GDP": models.Of(52000), "Life": models.Of(81), "Pop": models.Of(83e6),
	})

	return ds
}

func TestPNG_SupportedKinds(t *testing.T) {
	ds := sampleDataset(t)
	palette := charts.PaletteByName(charts.DefaultPalette)

	for _, kind := range []charts.Kind{charts.KindBar, charts.KindDonut, charts.KindLine, charts.KindScatter} {
		t.Run(string(kind), func(t *testing.T) {
			r := charts.Build(ds, charts.ChartSpec{Kind: kind, Indicators: []string{"GDP"}}, palette)

			var buf bytes.Buffer
			if err := PNG(&buf, r, Options{Width: 640, Height: 400}); err != nil {
				t.Fatalf("PNG failed: %v", err)
			}

			if !bytes.HasPrefix(buf.Bytes(), pngSignature) {
				t.Error("output is not a PNG")
			}
		})
	}
}

func TestPNG_Errors(t *testing.T) {
	ds := sampleDataset(t)
	palette := charts.PaletteByName(charts.DefaultPalette)

	tests := []struct {
		wantErr error
		name    string
		result  charts.Result
	}{
		{
			name:    "no data",
			result:  charts.Build(ds, charts.ChartSpec{Kind: charts.KindBar, Indicators: []string{"Missing"}}, palette),
			wantErr: ErrNoData,
		},
		{
			name:    "radar",
			result:  charts.Build(ds, charts.ChartSpec{Kind: charts.KindRadar, Indicators: []string{"GDP", "Life"}}, palette),
			wantErr: ErrUnsupportedKind,
		},
		{
			name:    "box",
			result:  charts.Build(ds, charts.ChartSpec{Kind: charts.KindBox, Indicators: []string{"GDP"}}, palette),
			wantErr: ErrUnsupportedKind,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := PNG(&buf, tt.result, Options{}); !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}

			if buf.Len() != 0 {
				t.Error("nothing should be written on error")
			}
		})
	}
}

func TestValueRange_Degenerate(t *testing.T) {
	r := valueRange(5, 5)
	if r.Min >= 5 || r.Max <= 5 {
		t.Errorf("range = %v..%v, want to straddle 5", r.Min, r.Max)
	}
}
