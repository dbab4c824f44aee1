// Package cli wires the ez-image-gen command line onto the generation
// services.
package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/phambaophuc/ez-image-gen/internal/config"
	"github.com/phambaophuc/ez-image-gen/internal/logger"
	"github.com/phambaophuc/ez-image-gen/internal/models"
	"github.com/phambaophuc/ez-image-gen/internal/options"
	"github.com/phambaophuc/ez-image-gen/internal/services/assets"
	"github.com/phambaophuc/ez-image-gen/internal/services/batch"
	"github.com/phambaophuc/ez-image-gen/internal/services/processor"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

type flags struct {
	amount          int
	width           int
	height          int
	format          string
	backgroundColor string
	textColor       string
	textOverlay     string
	fontSize        int
	autoFontSize    bool
	output          string
	list            string
	prefix          string
	watermarks      []string
	verbose         bool
}

var flagAliases = map[string]string{
	"bg":      "backgroundColor",
	"tc":      "textColor",
	"text":    "textOverlay",
	"auto-fs": "autoFontSize",
}

func normalizeAliases(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	if canonical, ok := flagAliases[name]; ok {
		name = canonical
	}
	return pflag.NormalizedName(name)
}

// NewRootCommand builds the ez-image-gen command. Flag defaults come from cfg.
func NewRootCommand(cfg *config.Config) *cobra.Command {
	f := &flags{}

	cmd := &cobra.Command{
		Use:   "ez-image-gen",
		Short: "Generate placeholder images",
		Long: `Generate placeholder images with a solid background, centered text and
optional watermarks.

Use --amount to generate identical images, or --list to generate one image per
line of a text file or per object of a JSON array.`,
		Example: `  ez-image-gen -a 3 -w 640 -h 480 --text "Hello"
  ez-image-gen --list banners.json -f webp -o ./out --auto-fs=true
  ez-image-gen -a 1 --watermark '{"path":"logo.png","width":32,"height":32,"position":"bottom-right"}'`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := f.applyAutoFontSizeArg(cmd.Flags(), args); err != nil {
				return err
			}
			return run(cmd, cfg, f)
		},
	}

	// -h belongs to --height, so help is registered without a shorthand.
	cmd.Flags().Bool("help", false, "help for ez-image-gen")
	bindFlags(cmd.Flags(), f, cfg.Defaults)
	cmd.SetGlobalNormalizationFunc(normalizeAliases)

	return cmd
}

func bindFlags(fs *pflag.FlagSet, f *flags, d config.DefaultsConfig) {
	fs.IntVarP(&f.amount, "amount", "a", 0, "number of images to generate")
	fs.IntVarP(&f.width, "width", "w", d.Width, "image width in pixels")
	fs.IntVarP(&f.height, "height", "h", d.Height, "image height in pixels")
	fs.StringVarP(&f.format, "format", "f", d.Format, "output format: png, jpg or webp")
	fs.StringVar(&f.backgroundColor, "backgroundColor", d.BackgroundColor, "background color (alias --bg)")
	fs.StringVar(&f.textColor, "textColor", d.TextColor, "text color (alias --tc)")
	fs.StringVar(&f.textOverlay, "textOverlay", "", "text drawn in the center (alias --text)")
	fs.IntVar(&f.fontSize, "fontSize", d.FontSize, "font size in pixels")
	fs.BoolVar(&f.autoFontSize, "autoFontSize", false, "derive the font size from the image size (alias --auto-fs, takes an optional true|false)")
	fs.StringVarP(&f.output, "output", "o", d.Output, "output directory")
	fs.StringVar(&f.list, "list", "", "text or JSON file with one entry per image")
	fs.StringVar(&f.prefix, "prefix", d.Prefix, "output filename prefix")
	fs.StringArrayVar(&f.watermarks, "watermark", nil, "watermark as a JSON object or array of objects (repeatable)")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "log every generated file")
}

func run(cmd *cobra.Command, cfg *config.Config, f *flags) error {
	log, err := logger.New(f.verbose, cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("%w: %v", models.ErrConfiguration, err)
	}
	defer log.Sync()

	layer, err := f.override(cmd.Flags())
	if err != nil {
		return err
	}
	if err := options.CheckFontMode(layer); err != nil {
		return err
	}

	req := models.RunRequest{
		Amount:     f.amount,
		List:       f.list,
		OutputPath: f.output,
		Prefix:     f.prefix,
	}
	if err := options.ValidateRun(req); err != nil {
		return err
	}

	p, err := processor.NewImageProcessor(cfg.Render, assets.NewLoader(cfg, log), log)
	if err != nil {
		return err
	}
	driver := batch.NewDriver(p, log)
	base := options.Defaults(cfg.Defaults)

	var paths []string
	if req.List != "" {
		paths, err = driver.RunList(cmd.Context(), req.List, base, layer, req.Prefix)
	} else {
		paths, err = driver.RunAmount(cmd.Context(), req.Amount, base, layer, req.Prefix)
	}
	if err != nil {
		log.Error("Generation failed",
			zap.Int("completed", len(paths)),
			zap.Error(err))
		return err
	}

	log.Info("Done", zap.Int("images", len(paths)))
	return nil
}

// override collects the flags the user actually set into the CLI layer, so
// unset flags never shadow list entries or defaults.
func (f *flags) override(fs *pflag.FlagSet) (models.Override, error) {
	var layer models.Override

	if fs.Changed("width") {
		layer.Width = &f.width
	}
	if fs.Changed("height") {
		layer.Height = &f.height
	}
	if fs.Changed("format") {
		layer.Format = &f.format
	}
	if fs.Changed("backgroundColor") {
		layer.BackgroundColor = &f.backgroundColor
	}
	if fs.Changed("textColor") {
		layer.TextColor = &f.textColor
	}
	if fs.Changed("textOverlay") {
		layer.TextOverlay = &f.textOverlay
	}
	if fs.Changed("fontSize") {
		layer.FontSize = &f.fontSize
	}
	if fs.Changed("autoFontSize") {
		layer.AutoFontSize = &f.autoFontSize
	}
	if fs.Changed("output") {
		layer.OutputPath = &f.output
	}

	if fs.Changed("watermark") {
		marks, err := parseWatermarkFlags(f.watermarks)
		if err != nil {
			return models.Override{}, err
		}
		layer.Watermarks = &marks
	}

	return layer, nil
}

// applyAutoFontSizeArg accepts the space separated form "--autoFontSize false".
// pflag leaves the value behind as a positional argument; any other positional
// argument is rejected.
func (f *flags) applyAutoFontSizeArg(fs *pflag.FlagSet, args []string) error {
	if len(args) == 0 {
		return nil
	}
	if len(args) == 1 && fs.Changed("autoFontSize") {
		if v, err := strconv.ParseBool(args[0]); err == nil {
			f.autoFontSize = v
			return nil
		}
	}
	return fmt.Errorf("%w: unexpected arguments %q", models.ErrConfiguration, args)
}

func parseWatermarkFlags(values []string) ([]models.WatermarkSpec, error) {
	marks := make([]models.WatermarkSpec, 0, len(values))
	for i, value := range values {
		raw := bytes.TrimSpace([]byte(value))
		if len(raw) > 0 && raw[0] == '[' {
			var list []models.WatermarkSpec
			if err := json.Unmarshal(raw, &list); err != nil {
				return nil, fmt.Errorf("%w: --watermark %d: %v", models.ErrParse, i+1, err)
			}
			marks = append(marks, list...)
			continue
		}

		var mark models.WatermarkSpec
		if err := json.Unmarshal(raw, &mark); err != nil {
			return nil, fmt.Errorf("%w: --watermark %d: %v", models.ErrParse, i+1, err)
		}
		marks = append(marks, mark)
	}
	return marks, nil
}
