package app

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"conway/internal/settings"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestParse(t *testing.T) {
	Convey("When no arguments are given", t, func() {
		cfg, err := Parse("life", nil)
		So(err, ShouldBeNil)

		Convey("The defaults match the stock settings", func() {
			s, err := cfg.Settings()
			So(err, ShouldBeNil)
			So(s, ShouldResemble, settings.Default())
			So(cfg.Width, ShouldEqual, 442)
			So(cfg.Height, ShouldEqual, 442)
		})
	})

	Convey("When flags are given", t, func() {
		cfg, err := Parse("life", []string{"-wrap=false", "-cell-width", "10", "-live-color", "#ff0000"})
		So(err, ShouldBeNil)
		s, err := cfg.Settings()
		So(err, ShouldBeNil)
		So(s.Wraparound, ShouldBeFalse)
		So(s.CellWidth, ShouldEqual, 10.0)
		So(s.Live, ShouldResemble, color.RGBA{R: 0xff, A: 0xff})
	})

	Convey("When a config file is given", t, func() {
		path := writeFile(t, "life.yaml", "wraparound: false\ncell_width: 12\nrate: 4\ndead_color: '#000000'\n")

		Convey("Its values replace the defaults", func() {
			cfg, err := Parse("life", []string{"-config", path})
			So(err, ShouldBeNil)
			So(cfg.Wraparound, ShouldBeFalse)
			So(cfg.CellWidth, ShouldEqual, 12.0)
			So(cfg.Rate, ShouldEqual, 4)
			So(cfg.DeadColor, ShouldEqual, "#000000")
			So(cfg.Offset, ShouldEqual, 4.0)
		})

		Convey("Explicit flags win over the file", func() {
			cfg, err := Parse("life", []string{"-rate", "30", "-config", path})
			So(err, ShouldBeNil)
			So(cfg.Rate, ShouldEqual, 30)
			So(cfg.CellWidth, ShouldEqual, 12.0)
		})
	})

	Convey("When the config file is missing", t, func() {
		_, err := Parse("life", []string{"-config", filepath.Join(t.TempDir(), "absent.yaml")})
		So(err, ShouldNotBeNil)
		So(err.Error(), ShouldContainSubstring, "[LoadFile]")
	})

	Convey("When a JSON config file is given", t, func() {
		path := writeFile(t, "life.json", `{"seed": 7, "density": 0.5}`)
		cfg, err := Parse("life", []string{"-config", path})
		So(err, ShouldBeNil)
		So(cfg.Seed, ShouldEqual, int64(7))
		So(cfg.Density, ShouldEqual, 0.5)
	})
}

func TestValidate(t *testing.T) {
	Convey("Given the default config", t, func() {
		cfg := NewConfig()
		So(cfg.Validate(), ShouldBeNil)

		Convey("A zero cell width is rejected", func() {
			cfg.CellWidth = 0
			So(cfg.Validate(), ShouldNotBeNil)
		})

		Convey("A density above one is rejected", func() {
			cfg.Density = 1.5
			So(cfg.Validate(), ShouldNotBeNil)
		})

		Convey("A negative gap is rejected", func() {
			cfg.CellDistance = -1
			So(cfg.Validate(), ShouldNotBeNil)
		})

		Convey("A malformed color is rejected", func() {
			cfg.BackgroundColor = "grey"
			err := cfg.Validate()
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "background_color")
		})

		Convey("A non-positive rate is rejected", func() {
			cfg.Rate = 0
			So(cfg.Validate(), ShouldNotBeNil)
		})
	})
}
