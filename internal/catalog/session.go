package catalog

import (
	"github.com/cartavis/carta-go/core/constants"
	"github.com/cartavis/carta-go/core/signature"
	"github.com/cartavis/carta-go/core/validation"
)

func sessionMethods(opts []signature.Option) []*signature.Signature {
	image := func(name, doc string) *signature.Signature {
		return signature.Build(name).
			Param("path", validation.NewString("", 0)).Done().
			Param("hdu", validation.NewString(`^\d*$`, 0)).Default("").Done().
			Doc(doc).
			Options(opts...).
			Signature()
	}
	component := func(name, doc string) *signature.Signature {
		return signature.Build(name).
			Param("component", validation.NewConstant(constants.Overlays)).Done().
			Doc(doc).
			Options(opts...).
			Signature()
	}
	optionalString := func() validation.Parameter {
		return validation.NewNoneOr(validation.NewString("", 0))
	}
	optionalColor := func() validation.Parameter {
		return validation.NewNoneOr(validation.NewColor())
	}

	return []*signature.Signature{
		image("open_image", "Open a new image, replacing any existing images.\n\npath : {0}\nhdu : {1}"),
		image("append_image", "Append a new image, keeping any existing images.\n\npath : {0}\nhdu : {1}"),

		signature.Build("set_view_area").
			Param("width", validation.NewNumber()).Done().
			Param("height", validation.NewNumber()).Done().
			Doc("Set the dimensions of the view area.\n\nwidth : {0}\nheight : {1}").
			Options(opts...).
			Signature(),

		signature.Build("set_coordinate_system").
			Param("system", validation.NewConstant(constants.CoordinateSystems)).Default(constants.SystemAuto).Done().
			Doc("Set the coordinate system.\n\nsystem : {0}").
			Options(opts...).
			Signature(),

		signature.Build("set_label_type").
			Param("label_type", validation.NewConstant(constants.LabelTypes)).Done().
			Doc("Set the label type.\n\nlabel_type : {0}").
			Options(opts...).
			Signature(),

		signature.Build("set_custom_number_format").
			Param("x_format", validation.NewConstant(constants.NumberFormats)).Optional().Done().
			Param("y_format", validation.NewConstant(constants.NumberFormats)).Optional().Done().
			Doc("Set a custom X and Y number format.\n\nx_format : {0}\ny_format : {1}").
			Options(opts...).
			Signature(),

		signature.Build("set_text").
			Param("title", optionalString()).Default(nil).Done().
			Param("label_x", optionalString()).Default(nil).Done().
			Param("label_y", optionalString()).Default(nil).Done().
			Doc("Set custom title and/or the axis label text.\n\ntitle : {0}\nlabel_x : {1}\nlabel_y : {2}").
			Options(opts...).
			Signature(),

		signature.Build("set_font").
			Param("component", validation.NewOneOf(constants.OverlayTitle, constants.OverlayNumbers, constants.OverlayLabels)).Done().
			Param("font", optionalString()).Default(nil).Done().
			Param("font_size", optionalNumber()).Default(nil).Done().
			Doc("Set the font and/or font size of an overlay component.\n\ncomponent : {0}\nfont : {1}\nfont_size : {2}").
			Options(opts...).
			Signature(),

		signature.Build("set_beam").
			Param("beam_type", validation.NewNoneOr(validation.NewConstant(constants.BeamTypes))).Default(nil).Done().
			Param("width", optionalNumber()).Default(nil).Done().
			Param("shift_x", optionalNumber()).Default(nil).Done().
			Param("shift_y", optionalNumber()).Default(nil).Done().
			Doc("Set the beam properties.\n\nbeam_type : {0}\nwidth : {1}\nshift_x : {2}\nshift_y : {3}").
			Options(opts...).
			Signature(),

		signature.Build("set_color").
			Param("color", validation.NewConstant(constants.PaletteColors)).Done().
			Param("component", validation.NewConstant(constants.Overlays)).Default(constants.OverlayGlobal).Done().
			Doc("Set the custom color on an overlay component, or the global color.\n\ncolor : {0}\ncomponent : {1}").
			Options(opts...).
			Signature(),

		component("clear_color", "Clear the custom color from an overlay component.\n\ncomponent : {0}"),

		signature.Build("set_visible").
			Param("component", validation.NewConstant(constants.Overlays)).Done().
			Param("visible", validation.NewBoolean()).Done().
			Doc("Set the visibility of an overlay component.\n\ncomponent : {0}\nvisible : {1}").
			Options(opts...).
			Signature(),

		component("show", "Show an overlay component.\n\ncomponent : {0}"),
		component("hide", "Hide an overlay component.\n\ncomponent : {0}"),

		signature.Build("set_cursor").
			Param("x", validation.NewNumber()).Done().
			Param("y", validation.NewNumber()).Done().
			Doc("Set the cursor position.\n\nx : {0}\ny : {1}").
			Options(opts...).
			Signature(),

		signature.Build("rendered_view_url").
			Param("background_color", optionalColor()).Default(nil).Done().
			Doc("Get a data URL of the rendered active image.\n\nbackground_color : {0}").
			Options(opts...).
			Signature(),

		signature.Build("save_rendered_view").
			Param("file_name", validation.NewString("", 0)).Done().
			Param("background_color", optionalColor()).Default(nil).Done().
			Doc("Save the decoded data of the rendered active image to a file.\n\nfile_name : {0}\nbackground_color : {1}").
			Options(opts...).
			Signature(),
	}
}
