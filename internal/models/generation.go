package models

// GenerationOptions is the effective configuration of one generated image.
// AutoFontSize, when set, takes precedence over FontSize.
type GenerationOptions struct {
	Width           int             `json:"width"`
	Height          int             `json:"height"`
	Format          Format          `json:"format"`
	BackgroundColor string          `json:"backgroundColor"`
	TextColor       string          `json:"textColor"`
	TextOverlay     string          `json:"textOverlay"`
	FontSize        int             `json:"fontSize"`
	AutoFontSize    bool            `json:"autoFontSize"`
	OutputPath      string          `json:"outputPath"`
	Filename        string          `json:"filename"`
	Watermarks      []WatermarkSpec `json:"watermarks,omitempty"`
}

// Override is one layer of partial options: the CLI flags or a list entry.
// Nil fields are left untouched by the merge.
type Override struct {
	Width           *int             `json:"width,omitempty"`
	Height          *int             `json:"height,omitempty"`
	Format          *string          `json:"format,omitempty"`
	BackgroundColor *string          `json:"backgroundColor,omitempty"`
	TextColor       *string          `json:"textColor,omitempty"`
	TextOverlay     *string          `json:"textOverlay,omitempty"`
	FontSize        *int             `json:"fontSize,omitempty"`
	AutoFontSize    *bool            `json:"autoFontSize,omitempty"`
	OutputPath      *string          `json:"outputPath,omitempty"`
	Output          *string          `json:"output,omitempty"`
	Watermarks      *[]WatermarkSpec `json:"watermarks,omitempty"`
	Watermark       *WatermarkSpec   `json:"watermark,omitempty"`
}

// RunRequest carries the run-level flags that are not per image.
type RunRequest struct {
	Amount     int
	List       string
	OutputPath string
	Prefix     string
}
