package catalog

import (
	"github.com/cartavis/carta-go/core/constants"
	"github.com/cartavis/carta-go/core/signature"
	"github.com/cartavis/carta-go/core/units"
	"github.com/cartavis/carta-go/core/validation"
)

// Image receivers expose these attributes to deferred descriptors.
const (
	AttrDepth         = "depth"
	AttrPolarizations = "polarizations"
)

func optionalNumber() validation.Parameter {
	return validation.NewNoneOr(validation.NewNumber())
}

func imageMethods(opts []signature.Option) []*signature.Signature {
	state := func(name, doc string) *signature.Signature {
		return signature.Build(name).
			Param("state", validation.NewBoolean()).Done().
			Doc(doc).
			Options(opts...).
			Signature()
	}

	configureContours := signature.Build("configure_contours").
		Params(signature.Zip(
			[]string{"levels", "smoothing_mode", "smoothing_factor"},
			validation.AllOptional(
				validation.NewIterableOf(validation.NewNumber()),
				validation.NewConstant(constants.SmoothingModes),
				validation.NewNumber(),
			),
		)...).
		Doc("Configure contours.\n\nlevels : {0}\nsmoothing_mode : {1}\nsmoothing_factor : {2}").
		Options(opts...).
		Signature()

	setContourDash := signature.Build("set_contour_dash").
		Params(signature.Zip(
			[]string{"dash_mode", "thickness"},
			validation.AllOptional(validation.NewConstant(constants.ContourDashModes), validation.NewNumber()),
		)...).
		Doc("Set the contour dash style.\n\ndash_mode : {0}\nthickness : {1}").
		Options(opts...).
		Signature()

	setContourColor := signature.Build("set_contour_color").
		Param("color", validation.NewColor()).Done().
		Doc("Set the contour color.\n\ncolor : {0}").
		Options(opts...).
		Signature()

	setContourColormap := signature.Build("set_contour_colormap").
		Param("colormap", validation.NewConstant(constants.Colormaps)).Done().
		Param("bias", optionalNumber()).Default(nil).Done().
		Param("contrast", optionalNumber()).Default(nil).Done().
		Doc("Set the contour colormap.\n\ncolormap : {0}\nbias : {1}\ncontrast : {2}").
		Options(opts...).
		Signature()

	var forwarded []validation.Parameter
	for _, sig := range []*signature.Signature{configureContours, setContourDash, setContourColor, setContourColormap} {
		forwarded = append(forwarded, sig.Vargs()...)
	}
	plotContours := signature.Build("plot_contours").
		Params(signature.Zip(
			[]string{"levels", "smoothing_mode", "smoothing_factor", "dash_mode", "thickness", "color", "colormap", "bias", "contrast"},
			validation.AllOptional(forwarded...),
		)...).
		Doc("Configure contour levels, scaling, dash, and colour or colourmap; and apply contours; in a single step.\n\n" +
			"levels : {0}\nsmoothing_mode : {1}\nsmoothing_factor : {2}\ndash_mode : {3}\nthickness : {4}\n" +
			"color : {5}\ncolormap : {6}\nbias : {7}\ncontrast : {8}").
		Since("v1.1").
		Options(opts...).
		Signature()

	return []*signature.Signature{
		state("set_spatial_matching", "Enable or disable spatial matching.\n\nstate : {0}"),
		state("set_spectral_matching", "Enable or disable spectral matching.\n\nstate : {0}"),
		state("set_cube_matching", "Enable or disable spatial and spectral matching.\n\nstate : {0}"),
		state("set_raster_scaling_matching", "Enable or disable raster scaling matching.\n\nstate : {0}"),

		signature.Build("set_channel").
			Param("channel", validation.NewEvaluate(validation.NumberFactory,
				0, validation.Attr(AttrDepth), validation.IncludeMin, validation.Kw("step", 1))).Done().
			Param("recursive", validation.NewBoolean()).Default(true).Done().
			Doc("Set the channel.\n\nchannel : {0}\nrecursive : {1}").
			Options(opts...).
			Signature(),

		signature.Build("set_polarization").
			Param("polarization", validation.NewEvaluate(validation.OneOfFactory, validation.Attrs(AttrPolarizations))).Done().
			Param("recursive", validation.NewBoolean()).Default(true).Done().
			Doc("Set the polarization.\n\npolarization : {0}\nrecursive : {1}").
			Options(opts...).
			Signature(),

		signature.Build("set_center").
			Param("x", validation.NewAxisCoordinate(units.AxisX)).Done().
			Param("y", validation.NewAxisCoordinate(units.AxisY)).Done().
			Doc("Set the center position, in image or world coordinates.\n\nx : {0}\ny : {1}").
			Options(opts...).
			Signature(),

		signature.Build("zoom_to_size").
			Param("size", validation.NewSize()).Done().
			Param("axis", validation.NewConstant(constants.SpatialAxes)).Done().
			Doc("Zoom to the given size along the specified axis.\n\nsize : {0}\naxis : {1}").
			Options(opts...).
			Signature(),

		signature.Build("set_zoom_level").
			Param("zoom", validation.NewNumber()).Done().
			Param("absolute", validation.NewBoolean()).Default(true).Done().
			Doc("Set the zoom level.\n\nzoom : {0}\nabsolute : {1}").
			Options(opts...).
			Signature(),

		signature.Build("set_colormap").
			Param("colormap", validation.NewConstant(constants.Colormaps)).Done().
			Param("invert", validation.NewBoolean()).Default(false).Done().
			Param("bias", optionalNumber()).Default(nil).Done().
			Param("contrast", optionalNumber()).Default(nil).Done().
			Doc("Set the colormap.\n\ncolormap : {0}\ninvert : {1}\nbias : {2}\ncontrast : {3}").
			Options(opts...).
			Signature(),

		signature.Build("set_scaling").
			Param("scaling", validation.NewConstant(constants.Scalings)).Done().
			Param("alpha", optionalNumber()).Default(nil).Done().
			Param("gamma", optionalNumber()).Default(nil).Done().
			Param("rank", validation.NewNoneOr(validation.NewNumber(validation.Min(0), validation.Max(100)))).Default(nil).Done().
			Param("min", optionalNumber()).Default(nil).Done().
			Param("max", optionalNumber()).Default(nil).Done().
			Doc("Set the colormap scaling.\n\nscaling : {0}\nalpha : {1}\ngamma : {2}\nrank : {3}\nmin : {4}\nmax : {5}").
			Options(opts...).
			Signature(),

		state("set_raster_visible", "Set the raster image visibility.\n\nstate : {0}"),

		configureContours,
		setContourDash,
		setContourColor,
		setContourColormap,
		plotContours,

		state("set_contours_visible", "Set the contour visibility.\n\nstate : {0}"),

		signature.Build("use_cube_histogram").
			Param("contours", validation.NewBoolean()).Default(false).Done().
			Doc("Use the cube histogram.\n\ncontours : {0}").
			Options(opts...).
			Signature(),

		signature.Build("use_channel_histogram").
			Param("contours", validation.NewBoolean()).Default(false).Done().
			Doc("Use the channel histogram.\n\ncontours : {0}").
			Options(opts...).
			Signature(),

		signature.Build("set_clip_percentile").
			Param("rank", validation.NewNumber(validation.Min(0), validation.Max(100))).Done().
			Doc("Set the clip percentile.\n\nrank : {0}").
			Options(opts...).
			Signature(),
	}
}
