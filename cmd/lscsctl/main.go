// lscsctl drives a Konica Minolta LS/CS instrument from the command
// line, either through an interop host (--addr) or against the built-in
// fake instrument (--fake) for trying the tool without hardware.
package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/edaniels/golog"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/multierr"

	konica "github.com/MichaelHengge/konica-lscs"
	"github.com/MichaelHengge/konica-lscs/misdk"
	"github.com/MichaelHengge/konica-lscs/misdk/fake"
	"github.com/MichaelHengge/konica-lscs/misdk/misdkbridge"
)

func main() {
	app := &cli.App{
		Name:  "lscsctl",
		Usage: "control Konica Minolta LS-150/LS-160/CS-150/CS-160 instruments",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "addr",
				Usage:   "address of the LC-MISDK interop host (host:port)",
				EnvVars: []string{"LSCS_ADDR"},
			},
			&cli.BoolFlag{
				Name:  "fake",
				Usage: "use the built-in fake instrument instead of an interop host",
			},
			&cli.IntFlag{
				Name:  "port",
				Usage: "virtual COM port of the instrument (0 = first connected)",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "enable debug logging",
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "devices",
				Usage:  "list attached instruments",
				Action: runDevices,
			},
			{
				Name:   "info",
				Usage:  "show instrument identity and calibration status",
				Action: runInfo,
			},
			{
				Name:  "measure",
				Usage: "trigger a measurement and print the result",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "no-wait", Usage: "do not wait for the measurement to complete"},
					&cli.DurationFlag{Name: "timeout", Usage: "bound the wait for completion (0 = wait forever)"},
				},
				Action: runMeasure,
			},
			{
				Name:   "read",
				Usage:  "print the values currently displayed on the instrument",
				Action: runRead,
			},
			{
				Name:  "samples",
				Usage: "work with the instrument's stored measurements",
				Subcommands: []*cli.Command{
					{Name: "list", Usage: "list stored samples", Action: runSamplesList},
					{Name: "read", Usage: "read one stored sample by 1-based number", ArgsUsage: "<number>", Action: runSamplesRead},
					{
						Name:      "delete",
						Usage:     "delete one stored sample, or all with --all",
						ArgsUsage: "[number]",
						Flags:     []cli.Flag{&cli.BoolFlag{Name: "all", Usage: "delete every stored sample"}},
						Action:    runSamplesDelete,
					},
				},
			},
			{
				Name:      "get",
				Usage:     "read an instrument setting",
				ArgsUsage: "<setting>",
				Action:    runGet,
			},
			{
				Name:      "set",
				Usage:     "change an instrument setting",
				ArgsUsage: "<setting> <value>",
				Action:    runSet,
			},
			{
				Name:   "version",
				Usage:  "show the vendor SDK version",
				Action: runVersion,
			},
		},
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error: %v", err))
		os.Exit(1)
	}
}

func newLogger(c *cli.Context) golog.Logger {
	if c.Bool("debug") {
		return golog.NewDebugLogger("lscsctl")
	}
	return golog.NewLogger("lscsctl")
}

// openDevice builds a connected Device from the global flags. The
// returned closer tears down both session and transport.
func openDevice(c *cli.Context, cfg konica.Config) (*konica.Device, func(), error) {
	logger := newLogger(c)
	cfg.ComPort = c.Int("port")

	var sdk misdk.SDK
	switch {
	case c.Bool("fake"):
		f := fake.New()
		f.SetMeasureDuration(500 * time.Millisecond)
		sdk = f
	case c.String("addr") != "":
		client, err := misdkbridge.Dial(c.Context, misdkbridge.Config{Address: c.String("addr")}, logger)
		if err != nil {
			return nil, nil, err
		}
		sdk = client
	default:
		return nil, nil, errors.New("either --addr or --fake is required")
	}

	dev, err := konica.NewDevice(sdk, cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	if err := dev.Connect(c.Context); err != nil {
		return nil, nil, multierr.Combine(err, dev.Close())
	}
	return dev, func() {
		if err := dev.Close(); err != nil {
			logger.Debugw("close", "error", err)
		}
	}, nil
}

func printValues(values map[string]float64) {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	tw := table.NewWriter()
	tw.SetOutputMirror(os.Stdout)
	tw.AppendHeader(table.Row{"Channel", "Value"})
	for _, k := range keys {
		tw.AppendRow(table.Row{k, strconv.FormatFloat(values[k], 'f', 4, 64)})
	}
	tw.Render()
}

func runDevices(c *cli.Context) error {
	dev, closeDev, err := openDevice(c, konica.Config{})
	if err != nil {
		return err
	}
	defer closeDev()
	devices, err := dev.DeviceList(c.Context)
	if err != nil {
		return err
	}
	ports := make([]int, 0, len(devices))
	for port := range devices {
		ports = append(ports, port)
	}
	sort.Ints(ports)
	tw := table.NewWriter()
	tw.SetOutputMirror(os.Stdout)
	tw.AppendHeader(table.Row{"COM Port", "Device"})
	for _, port := range ports {
		tw.AppendRow(table.Row{port, devices[port]})
	}
	tw.Render()
	return nil
}

func runInfo(c *cli.Context) error {
	dev, closeDev, err := openDevice(c, konica.Config{})
	if err != nil {
		return err
	}
	defer closeDev()
	info, err := dev.DeviceInfo(c.Context)
	if err != nil {
		return err
	}
	tw := table.NewWriter()
	tw.SetOutputMirror(os.Stdout)
	tw.AppendRow(table.Row{"Product", info.ProductName})
	tw.AppendRow(table.Row{"Serial number", info.SerialNumber})
	tw.AppendRow(table.Row{"Firmware", fmt.Sprintf("%s.%s.%s", info.FirmwareMajor, info.FirmwareMinor, info.FirmwareFree)})
	tw.AppendRow(table.Row{"Calibration expires", info.CalibrationExpiration})
	tw.Render()
	if info.CalibrationWarning {
		fmt.Println(color.YellowString("warning: periodic calibration is due"))
	}
	return nil
}

func runMeasure(c *cli.Context) error {
	dev, closeDev, err := openDevice(c, konica.Config{MeasureTimeout: c.Duration("timeout")})
	if err != nil {
		return err
	}
	defer closeDev()
	wait := !c.Bool("no-wait")
	if err := dev.Measure(c.Context, wait); err != nil {
		return err
	}
	if !wait {
		fmt.Println("measurement started")
		return nil
	}
	values, err := dev.Color(c.Context)
	if err != nil {
		return err
	}
	printValues(values)
	return nil
}

func runRead(c *cli.Context) error {
	dev, closeDev, err := openDevice(c, konica.Config{})
	if err != nil {
		return err
	}
	defer closeDev()
	values, err := dev.ReadDisplayValue(c.Context)
	if err != nil {
		return err
	}
	printValues(values)
	return nil
}

func runSamplesList(c *cli.Context) error {
	dev, closeDev, err := openDevice(c, konica.Config{})
	if err != nil {
		return err
	}
	defer closeDev()
	count, err := dev.NumberOfSamples(c.Context)
	if err != nil {
		return err
	}
	fmt.Printf("%d stored sample(s)\n", count)
	for n := 1; n <= count; n++ {
		values, err := dev.ReadSampleData(c.Context, n)
		if err != nil {
			return errors.Wrapf(err, "sample %d", n)
		}
		fmt.Printf("sample %d:\n", n)
		printValues(values)
	}
	return nil
}

func runSamplesRead(c *cli.Context) error {
	if c.NArg() != 1 {
		return errors.New("usage: samples read <number>")
	}
	number, err := strconv.Atoi(c.Args().First())
	if err != nil {
		return errors.Wrap(err, "sample number")
	}
	dev, closeDev, err := openDevice(c, konica.Config{})
	if err != nil {
		return err
	}
	defer closeDev()
	values, err := dev.ReadSampleData(c.Context, number)
	if err != nil {
		return err
	}
	printValues(values)
	return nil
}

func runSamplesDelete(c *cli.Context) error {
	number := konica.DeleteAll
	if !c.Bool("all") {
		if c.NArg() != 1 {
			return errors.New("usage: samples delete <number> (or --all)")
		}
		var err error
		number, err = strconv.Atoi(c.Args().First())
		if err != nil {
			return errors.Wrap(err, "sample number")
		}
	}
	dev, closeDev, err := openDevice(c, konica.Config{})
	if err != nil {
		return err
	}
	defer closeDev()
	if err := dev.DeleteSampleData(c.Context, number); err != nil {
		return err
	}
	if number == konica.DeleteAll {
		fmt.Println("deleted all samples")
	} else {
		fmt.Printf("deleted sample %d\n", number)
	}
	return nil
}

func runVersion(c *cli.Context) error {
	dev, closeDev, err := openDevice(c, konica.Config{})
	if err != nil {
		return err
	}
	defer closeDev()
	version, err := dev.SDKVersion(c.Context)
	if err != nil {
		return err
	}
	fmt.Println(version)
	return nil
}

func runGet(c *cli.Context) error {
	if c.NArg() != 1 {
		return errors.Errorf("usage: get <setting>; settings: %v", settingNames())
	}
	name := c.Args().First()
	ops, ok := settingsByName[name]
	if !ok {
		return errors.Errorf("unknown setting %q; settings: %v", name, settingNames())
	}
	dev, closeDev, err := openDevice(c, konica.Config{})
	if err != nil {
		return err
	}
	defer closeDev()
	value, err := ops.get(c.Context, dev)
	if err != nil {
		return err
	}
	fmt.Println(value)
	return nil
}

func runSet(c *cli.Context) error {
	if c.NArg() != 2 {
		return errors.Errorf("usage: set <setting> <value>; settings: %v", settingNames())
	}
	name, value := c.Args().Get(0), c.Args().Get(1)
	ops, ok := settingsByName[name]
	if !ok {
		return errors.Errorf("unknown setting %q; settings: %v", name, settingNames())
	}
	dev, closeDev, err := openDevice(c, konica.Config{})
	if err != nil {
		return err
	}
	defer closeDev()
	if err := ops.set(c.Context, dev, value); err != nil {
		return err
	}
	fmt.Printf("%s = %s\n", name, value)
	return nil
}

type settingOps struct {
	get func(ctx context.Context, dev *konica.Device) (string, error)
	set func(ctx context.Context, dev *konica.Device, value string) error
}

func settingNames() []string {
	names := make([]string, 0, len(settingsByName))
	for name := range settingsByName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func boolSetting(
	get func(dev *konica.Device, ctx context.Context) (bool, error),
	set func(dev *konica.Device, ctx context.Context, v bool) error,
) settingOps {
	return settingOps{
		get: func(ctx context.Context, dev *konica.Device) (string, error) {
			v, err := get(dev, ctx)
			return strconv.FormatBool(v), err
		},
		set: func(ctx context.Context, dev *konica.Device, value string) error {
			v, err := strconv.ParseBool(value)
			if err != nil {
				return errors.Wrapf(err, "%q is not a boolean", value)
			}
			return set(dev, ctx, v)
		},
	}
}

var settingsByName = map[string]settingOps{
	"color-mode": {
		get: func(ctx context.Context, dev *konica.Device) (string, error) {
			mode, err := dev.ColorMode(ctx)
			return string(mode), err
		},
		set: func(ctx context.Context, dev *konica.Device, value string) error {
			return dev.SetColorMode(ctx, konica.ColorMode(value))
		},
	},
	"peak-valley": {
		get: func(ctx context.Context, dev *konica.Device) (string, error) {
			mode, err := dev.PeakValley(ctx)
			return string(mode), err
		},
		set: func(ctx context.Context, dev *konica.Device, value string) error {
			return dev.SetPeakValley(ctx, konica.PeakValleyMode(value))
		},
	},
	"lens": {
		get: func(ctx context.Context, dev *konica.Device) (string, error) {
			lens, err := dev.CloseUpLens(ctx)
			return string(lens), err
		},
		set: func(ctx context.Context, dev *konica.Device, value string) error {
			return dev.SetCloseUpLens(ctx, konica.LensType(value))
		},
	},
	"display-type": {
		get: func(ctx context.Context, dev *konica.Device) (string, error) {
			dt, err := dev.DisplayType(ctx)
			return string(dt), err
		},
		set: func(ctx context.Context, dev *konica.Device, value string) error {
			return dev.SetDisplayType(ctx, konica.DisplayType(value))
		},
	},
	"language": {
		get: func(ctx context.Context, dev *konica.Device) (string, error) {
			lang, err := dev.DisplayLanguage(ctx)
			return string(lang), err
		},
		set: func(ctx context.Context, dev *konica.Device, value string) error {
			return dev.SetDisplayLanguage(ctx, konica.Language(value))
		},
	},
	"date-format": {
		get: func(ctx context.Context, dev *konica.Device) (string, error) {
			format, err := dev.DateFormat(ctx)
			return string(format), err
		},
		set: func(ctx context.Context, dev *konica.Device, value string) error {
			return dev.SetDateFormat(ctx, konica.DateFormat(value))
		},
	},
	"save-mode": {
		get: func(ctx context.Context, dev *konica.Device) (string, error) {
			mode, err := dev.DataSaveMode(ctx)
			return string(mode), err
		},
		set: func(ctx context.Context, dev *konica.Device, value string) error {
			return dev.SetDataSaveMode(ctx, konica.SaveMode(value))
		},
	},
	"measurement-time": {
		get: func(ctx context.Context, dev *konica.Device) (string, error) {
			mode, seconds, err := dev.MeasurementTime(ctx)
			if err != nil {
				return "", err
			}
			if mode == konica.TimeModeManual {
				return fmt.Sprintf("manual (%gs)", seconds), nil
			}
			return string(mode), nil
		},
		set: func(ctx context.Context, dev *konica.Device, value string) error {
			if value == string(konica.TimeModeAuto) {
				return dev.SetMeasurementTime(ctx, konica.TimeModeAuto, 0)
			}
			seconds, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return errors.Errorf("value must be %q or a manual time in seconds", konica.TimeModeAuto)
			}
			return dev.SetMeasurementTime(ctx, konica.TimeModeManual, seconds)
		},
	},
	"sync": {
		get: func(ctx context.Context, dev *konica.Device) (string, error) {
			on, freq, err := dev.SyncMode(ctx)
			if err != nil {
				return "", err
			}
			if on {
				return fmt.Sprintf("on (%g Hz)", freq), nil
			}
			return "off", nil
		},
		set: func(ctx context.Context, dev *konica.Device, value string) error {
			if value == "off" {
				return dev.SetSyncMode(ctx, false, 0)
			}
			freq, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return errors.New("value must be \"off\" or a sync frequency in Hz")
			}
			return dev.SetSyncMode(ctx, true, freq)
		},
	},
	"backlight-level": {
		get: func(ctx context.Context, dev *konica.Device) (string, error) {
			level, err := dev.BacklightLevel(ctx)
			return strconv.Itoa(level), err
		},
		set: func(ctx context.Context, dev *konica.Device, value string) error {
			level, err := strconv.Atoi(value)
			if err != nil {
				return errors.Wrapf(err, "%q is not a level", value)
			}
			return dev.SetBacklightLevel(ctx, level)
		},
	},
	"luminance-unit": {
		get: func(ctx context.Context, dev *konica.Device) (string, error) {
			unit, err := dev.LuminanceUnit(ctx)
			return string(unit), err
		},
		set: func(ctx context.Context, dev *konica.Device, value string) error {
			return dev.SetLuminanceUnit(ctx, konica.LuminanceUnit(value))
		},
	},
	"ccf": {
		get: func(ctx context.Context, dev *konica.Device) (string, error) {
			factor, enabled, err := dev.CCF(ctx)
			if err != nil {
				return "", err
			}
			if enabled {
				return fmt.Sprintf("%g (on)", factor), nil
			}
			return fmt.Sprintf("%g (off)", factor), nil
		},
		set: func(ctx context.Context, dev *konica.Device, value string) error {
			if value == "off" {
				return dev.SetCCF(ctx, 1, false)
			}
			factor, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return errors.New("value must be \"off\" or a correction factor")
			}
			return dev.SetCCF(ctx, factor, true)
		},
	},
	"digits": {
		get: func(ctx context.Context, dev *konica.Device) (string, error) {
			digits, err := dev.ColorDisplayDigits(ctx)
			return strconv.Itoa(digits), err
		},
		set: func(ctx context.Context, dev *konica.Device, value string) error {
			digits, err := strconv.Atoi(value)
			if err != nil {
				return errors.Wrapf(err, "%q is not a digit count", value)
			}
			return dev.SetColorDisplayDigits(ctx, digits)
		},
	},
}

func init() {
	settingsByName["backlight"] = boolSetting((*konica.Device).Backlight, (*konica.Device).SetBacklight)
	settingsByName["auto-power-off"] = boolSetting((*konica.Device).AutoPowerOff, (*konica.Device).SetAutoPowerOff)
	settingsByName["calib-notify"] = boolSetting((*konica.Device).PeriodicCalibrationNotify, (*konica.Device).SetPeriodicCalibrationNotify)
	settingsByName["toggle"] = boolSetting((*konica.Device).Toggle, (*konica.Device).SetToggle)
	settingsByName["trigger"] = boolSetting((*konica.Device).Trigger, (*konica.Device).SetTrigger)
}
