package fake_test

import (
	"context"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"go.viam.com/test"

	"github.com/MichaelHengge/konica-lscs/misdk"
	"github.com/MichaelHengge/konica-lscs/misdk/fake"
)

func connected(t *testing.T) *fake.SDK {
	t.Helper()
	s := fake.New()
	res, err := s.Connect(context.Background(), 0)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, res.OK(), test.ShouldBeTrue)
	return s
}

func TestRequireConnection(t *testing.T) {
	s := fake.New()
	ctx := context.Background()

	res, err := s.Measure(ctx, 0)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, res.Code, test.ShouldEqual, misdk.ErNoConnect)

	res, _, err = s.ReadDisplayValue(ctx, 0)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, res.Code, test.ShouldEqual, misdk.ErNoConnect)
}

func TestMeasureLifecycle(t *testing.T) {
	s := connected(t)
	mock := clock.NewMock()
	s.SetClock(mock)
	s.SetMeasureDuration(2 * time.Second)
	ctx := context.Background()

	res, err := s.Measure(ctx, 0)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, res.OK(), test.ShouldBeTrue)

	res, status, err := s.PollingMeasurement(ctx, 0)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, res.OK(), test.ShouldBeTrue)
	test.That(t, status, test.ShouldEqual, misdk.StatusMeasuring)

	mock.Add(time.Second)
	_, status, _ = s.PollingMeasurement(ctx, 0)
	test.That(t, status, test.ShouldEqual, misdk.StatusMeasuring)

	mock.Add(time.Second)
	_, status, _ = s.PollingMeasurement(ctx, 0)
	test.That(t, status, test.ShouldEqual, misdk.StatusIdling)
}

func TestCancelMeasurement(t *testing.T) {
	s := connected(t)
	mock := clock.NewMock()
	s.SetClock(mock)
	s.SetMeasureDuration(time.Minute)
	ctx := context.Background()

	_, err := s.Measure(ctx, 0)
	test.That(t, err, test.ShouldBeNil)
	_, status, _ := s.PollingMeasurement(ctx, 0)
	test.That(t, status, test.ShouldEqual, misdk.StatusMeasuring)

	res, err := s.CancelMeasurement(ctx, 0)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, res.OK(), test.ShouldBeTrue)
	_, status, _ = s.PollingMeasurement(ctx, 0)
	test.That(t, status, test.ShouldEqual, misdk.StatusIdling)
}

func TestSampleStore(t *testing.T) {
	s := connected(t)
	ctx := context.Background()

	res, count, err := s.NumberOfSamples(ctx, 0)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, res.OK(), test.ShouldBeTrue)
	test.That(t, count, test.ShouldEqual, 0)

	s.AddSample(misdk.ColorValues{"Lv": 100, "x": 0.31, "y": 0.33})
	s.AddSample(misdk.ColorValues{"Lv": 200, "x": 0.30, "y": 0.32})
	_, count, _ = s.NumberOfSamples(ctx, 0)
	test.That(t, count, test.ShouldEqual, 2)

	res, values, err := s.ReadSampleData(ctx, 2, misdk.SpaceLvxy, 0)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, res.OK(), test.ShouldBeTrue)
	test.That(t, values["Lv"], test.ShouldEqual, 200.0)

	// the store is 1-based; 0 and past-the-end report no data
	res, _, _ = s.ReadSampleData(ctx, 0, misdk.SpaceLvxy, 0)
	test.That(t, res.Code, test.ShouldEqual, misdk.ErNoData)
	res, _, _ = s.ReadSampleData(ctx, 3, misdk.SpaceLvxy, 0)
	test.That(t, res.Code, test.ShouldEqual, misdk.ErNoData)

	res, err = s.DeleteSampleData(ctx, 1, 0)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, res.OK(), test.ShouldBeTrue)
	_, count, _ = s.NumberOfSamples(ctx, 0)
	test.That(t, count, test.ShouldEqual, 1)
	_, values, _ = s.ReadSampleData(ctx, 1, misdk.SpaceLvxy, 0)
	test.That(t, values["Lv"], test.ShouldEqual, 200.0)

	res, err = s.DeleteSampleData(ctx, -1, 0)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, res.OK(), test.ShouldBeTrue)
	_, count, _ = s.NumberOfSamples(ctx, 0)
	test.That(t, count, test.ShouldEqual, 0)
}

func TestLuminanceOnlySamples(t *testing.T) {
	s := connected(t)
	s.SetLuminanceOnly(true)
	s.AddSample(misdk.ColorValues{"Lv": 55})
	ctx := context.Background()

	res, _, err := s.ReadSampleData(ctx, 1, misdk.SpaceXYZ, 0)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, res.Code, test.ShouldEqual, misdk.ErNoData)

	res, values, err := s.ReadSampleData(ctx, 1, misdk.SpaceLvxy, 0)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, res.OK(), test.ShouldBeTrue)
	test.That(t, values["Lv"], test.ShouldEqual, 55.0)
}

func TestSpaceConversion(t *testing.T) {
	s := connected(t)
	s.AddSample(misdk.ColorValues{"Lv": 100, "x": 0.5, "y": 0.4})
	ctx := context.Background()

	res, values, err := s.ReadSampleData(ctx, 1, misdk.SpaceXYZ, 0)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, res.OK(), test.ShouldBeTrue)
	test.That(t, values["Y"], test.ShouldEqual, 100.0)
	test.That(t, values["X"], test.ShouldAlmostEqual, 125.0, 1e-9)
	test.That(t, values["Z"], test.ShouldAlmostEqual, 25.0, 1e-9)

	_, values, _ = s.ReadSampleData(ctx, 1, misdk.SpaceLv, 0)
	test.That(t, values, test.ShouldResemble, misdk.ColorValues{"Lv": 100})
}

func TestAutoSaveMode(t *testing.T) {
	s := connected(t)
	ctx := context.Background()

	res, err := s.SetDataSaveMode(ctx, misdk.SaveAuto, 0)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, res.OK(), test.ShouldBeTrue)

	_, err = s.Measure(ctx, 0)
	test.That(t, err, test.ShouldBeNil)
	_, count, _ := s.NumberOfSamples(ctx, 0)
	test.That(t, count, test.ShouldEqual, 1)
}

func TestInjectErrorIsOneShot(t *testing.T) {
	s := connected(t)
	ctx := context.Background()
	s.InjectError("Measure", misdk.ErInstrumentProcessing)

	res, err := s.Measure(ctx, 0)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, res.Code, test.ShouldEqual, misdk.ErInstrumentProcessing)

	res, err = s.Measure(ctx, 0)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, res.OK(), test.ShouldBeTrue)
}

func TestTargetStore(t *testing.T) {
	s := connected(t)
	ctx := context.Background()

	// selecting an empty channel reports no data
	res, err := s.SetTargetChannel(ctx, 2, 0)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, res.Code, test.ShouldEqual, misdk.ErNoData)

	data := misdk.TargetData{
		Unit:   misdk.UnitCdm2,
		Values: misdk.ColorValues{"Lv": 80, "x": 0.31, "y": 0.33},
		ID:     "WHITEPOINT",
	}
	res, err = s.WriteTargetData(ctx, 2, data, 0)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, res.OK(), test.ShouldBeTrue)

	res, err = s.SetTargetChannel(ctx, 2, 0)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, res.OK(), test.ShouldBeTrue)
	res, channel, err := s.TargetChannel(ctx, 0)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, res.OK(), test.ShouldBeTrue)
	test.That(t, channel, test.ShouldEqual, 2)

	res, values, err := s.ReadTargetData(ctx, 2, misdk.SpaceLvxy, 0)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, res.OK(), test.ShouldBeTrue)
	test.That(t, values["Lv"], test.ShouldEqual, 80.0)

	res, err = s.DeleteTargetData(ctx, 2, 0)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, res.OK(), test.ShouldBeTrue)
	res, _, _ = s.ReadTargetData(ctx, 2, misdk.SpaceLvxy, 0)
	test.That(t, res.Code, test.ShouldEqual, misdk.ErNoData)
}

func TestCalibrationStore(t *testing.T) {
	s := connected(t)
	ctx := context.Background()

	// channel 0 is the factory calibration
	res, data, err := s.CalibrationData(ctx, 0, 0)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, res.OK(), test.ShouldBeTrue)
	test.That(t, data.ID, test.ShouldEqual, "FACTORY")

	point := []misdk.TargetData{{Unit: misdk.UnitCdm2, Values: misdk.ColorValues{"Lv": 100, "x": 0.31, "y": 0.33}}}
	res, err = s.SetMatrixCalibration(ctx, 1, point, point, misdk.CalibOnePoint, "USER1", 0)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, res.OK(), test.ShouldBeTrue)

	res, err = s.SetCalibrationChannel(ctx, 1, 0)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, res.OK(), test.ShouldBeTrue)

	// the factory channel cannot be deleted
	res, err = s.DeleteCalibrationData(ctx, 0, 0)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, res.Code, test.ShouldEqual, misdk.ErInvalidParameter)

	// deleting the active channel falls back to factory
	res, err = s.DeleteCalibrationData(ctx, 1, 0)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, res.OK(), test.ShouldBeTrue)
	res, channel, err := s.CalibrationChannel(ctx, 0)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, res.OK(), test.ShouldBeTrue)
	test.That(t, channel, test.ShouldEqual, 0)
}

func TestDisconnectDisablesTrigger(t *testing.T) {
	s := connected(t)
	ctx := context.Background()

	res, err := s.SetTrigger(ctx, misdk.TriggerOn, 0)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, res.OK(), test.ShouldBeTrue)

	_, err = s.Disconnect(ctx, 0)
	test.That(t, err, test.ShouldBeNil)
	_, err = s.Connect(ctx, 0)
	test.That(t, err, test.ShouldBeNil)

	res, status, err := s.Trigger(ctx, 0)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, res.OK(), test.ShouldBeTrue)
	test.That(t, status, test.ShouldEqual, misdk.TriggerOff)
}
