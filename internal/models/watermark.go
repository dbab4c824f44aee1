package models

import "encoding/json"

type WatermarkSpec struct {
	Path     string   `json:"path"`
	Width    int      `json:"width"`
	Height   int      `json:"height"`
	Opacity  float64  `json:"opacity"`
	Position Position `json:"position"`
	Rotation float64  `json:"rotation"`
}

// UnmarshalJSON defaults a missing opacity to fully opaque.
func (w *WatermarkSpec) UnmarshalJSON(data []byte) error {
	type plain WatermarkSpec
	aux := struct {
		*plain
		Opacity *float64 `json:"opacity"`
	}{plain: (*plain)(w)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	w.Opacity = 1
	if aux.Opacity != nil {
		w.Opacity = *aux.Opacity
	}
	return nil
}
