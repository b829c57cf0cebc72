package diorama

import "diorama/params"

// Parameter paths.
const (
	PathBackgroundColor = "backgroundColor"
	PathShowLightHelper = "showDirectionalLightHelper"
	PathLightColor      = "directionalLightColor"
	PathLightIntensity  = "directionalLightIntensity"
	PathGroundSize      = "ground.size"
	PathGroundColor     = "ground.color"
	PathGroundRoughness = "ground.roughness"
	PathGroundMetalness = "ground.metalness"
	PathWaterHeight     = "water.height"
	PathWaterColor      = "water.color"
	PathWaterRoughness  = "water.roughness"
	PathWaterMetalness  = "water.metalness"
	PathTreeCount       = "trees.count"
	PathLeavesColor     = "trees.leaves.color"
	PathLeavesRoughness = "trees.leaves.roughness"
	PathLeavesMetalness = "trees.leaves.metalness"
	PathTrunkColor      = "trees.trunk.color"
	PathTrunkRoughness  = "trees.trunk.roughness"
	PathTrunkMetalness  = "trees.trunk.metalness"
	PathSnowVisible     = "snow.visible"
	PathSnowCount       = "snow.count"
	PathSnowSpeed       = "snow.speed"
	PathSnowSize        = "snow.size"
	PathSnowColor       = "snow.color"
)

type fieldDef struct {
	path                string
	kind                params.Kind
	def, min, max, step float64
	flag                bool
	color               string
}

func numberField(path string, def, min, max, step float64) fieldDef {
	return fieldDef{path: path, kind: params.KindNumber, def: def, min: min, max: max, step: step}
}

func colorField(path, def string) fieldDef {
	return fieldDef{path: path, kind: params.KindColor, color: def}
}

func boolField(path string, def bool) fieldDef {
	return fieldDef{path: path, kind: params.KindBool, flag: def}
}

// fieldDefs lists every field with its default, in panel order.
var fieldDefs = []fieldDef{
	colorField(PathBackgroundColor, "#536375"),
	colorField(PathLightColor, "#ffffff"),
	numberField(PathLightIntensity, 1, 0, 1, 0),
	boolField(PathShowLightHelper, true),

	numberField(PathGroundSize, 10, 1, 20, 1),
	colorField(PathGroundColor, "#dcdcdc"),
	numberField(PathGroundRoughness, 0.6, 0, 1, 0.01),
	numberField(PathGroundMetalness, 0.05, 0, 1, 0.01),

	numberField(PathWaterHeight, 0.3, 0.2, 0.4, 0.01),
	colorField(PathWaterColor, "#00ffff"),
	numberField(PathWaterRoughness, 0.5, 0, 1, 0.01),
	numberField(PathWaterMetalness, 0.1, 0, 1, 0.01),

	numberField(PathTreeCount, 20, 0, 100, 1),
	colorField(PathLeavesColor, "#214829"),
	numberField(PathLeavesRoughness, 0.9, 0, 1, 0.01),
	numberField(PathLeavesMetalness, 0, 0, 1, 0.01),
	colorField(PathTrunkColor, "#392400"),
	numberField(PathTrunkRoughness, 0.9, 0, 1, 0.01),
	numberField(PathTrunkMetalness, 0, 0, 1, 0.01),

	boolField(PathSnowVisible, false),
	numberField(PathSnowCount, 1000, 0, 5000, 1),
	numberField(PathSnowSpeed, 1, 0, 5, 0.01),
	numberField(PathSnowSize, 0.05, 0.01, 0.5, 0.01),
	colorField(PathSnowColor, "#ffffff"),
}

// defineParams registers fieldDefs on s.
func defineParams(s *params.Store) error {
	for _, f := range fieldDefs {
		var err error
		switch f.kind {
		case params.KindNumber:
			err = s.DefineNumber(f.path, f.def, f.min, f.max, f.step)
		case params.KindBool:
			err = s.DefineBool(f.path, f.flag)
		case params.KindColor:
			err = s.DefineColor(f.path, f.color)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
