package diorama

import (
	"diorama/params"
	"diorama/scene"
)

func (d *Diorama) bind() error {
	s := d.Scene
	bindings := map[string]func(params.Value){
		PathBackgroundColor: func(v params.Value) {
			s.Background = v.Color()
			s.Fog.Color = v.Color()
		},
		PathLightColor:      func(v params.Value) { d.Sun.Color = v.Color() },
		PathLightIntensity:  func(v params.Value) { d.Sun.Intensity = v.Float32() },
		PathShowLightHelper: func(v params.Value) { d.Sun.ShowHelper = v.Bool() },

		PathGroundSize: func(v params.Value) {
			size := v.Float32()
			d.Ground.Transform.Scale[0] = size
			d.Ground.Transform.Scale[2] = size
			d.Water.Transform.Scale[0] = size
			d.Water.Transform.Scale[1] = size
			d.Snow.SetHalfExtent(size / 2)
			d.Sun.ShadowRadius = size * ShadowCoverage
		},
		PathGroundColor:     func(v params.Value) { d.Ground.Mesh.Material.Color = v.Color() },
		PathGroundRoughness: func(v params.Value) { d.Ground.Mesh.Material.Roughness = v.Float32() },
		PathGroundMetalness: func(v params.Value) { d.Ground.Mesh.Material.Metalness = v.Float32() },

		PathWaterHeight:    func(v params.Value) { d.Water.Transform.Position[1] = v.Float32() },
		PathWaterColor:     func(v params.Value) { d.Water.Mesh.Material.Color = v.Color() },
		PathWaterRoughness: func(v params.Value) { d.Water.Mesh.Material.Roughness = v.Float32() },
		PathWaterMetalness: func(v params.Value) { d.Water.Mesh.Material.Metalness = v.Float32() },

		PathTreeCount: func(v params.Value) {
			added, removed := d.Trees.Reconcile(v.Int())
			if added+removed > 0 {
				d.logger.Printf("trees: +%d -%d, %d live", added, removed, d.Trees.Count())
			}
		},
		PathLeavesColor: d.broadcast(scene.TagLeaves, d.Factory.LeavesMaterial, func(m *scene.Material, v params.Value) {
			m.Color = v.Color()
		}),
		PathLeavesRoughness: d.broadcast(scene.TagLeaves, d.Factory.LeavesMaterial, func(m *scene.Material, v params.Value) {
			m.Roughness = v.Float32()
		}),
		PathLeavesMetalness: d.broadcast(scene.TagLeaves, d.Factory.LeavesMaterial, func(m *scene.Material, v params.Value) {
			m.Metalness = v.Float32()
		}),
		PathTrunkColor: d.broadcast(scene.TagTrunk, d.Factory.TrunkMaterial, func(m *scene.Material, v params.Value) {
			m.Color = v.Color()
		}),
		PathTrunkRoughness: d.broadcast(scene.TagTrunk, d.Factory.TrunkMaterial, func(m *scene.Material, v params.Value) {
			m.Roughness = v.Float32()
		}),
		PathTrunkMetalness: d.broadcast(scene.TagTrunk, d.Factory.TrunkMaterial, func(m *scene.Material, v params.Value) {
			m.Metalness = v.Float32()
		}),

		PathSnowVisible: func(v params.Value) {
			d.Snow.Visible = v.Bool()
			d.SnowNode.Visible = v.Bool()
		},
		// Only a changed count reseeds; Reset re-sets every field.
		PathSnowCount: func(v params.Value) {
			if v.Int() == d.Snow.Count() {
				return
			}
			d.Snow.Reseed(v.Int())
			d.logger.Printf("snow: reseeded %d particles", d.Snow.Count())
		},
		// Speed is read by Advance every tick.
		PathSnowSpeed: func(params.Value) {},
		PathSnowSize:  func(v params.Value) { d.SnowNode.Mesh.Material.PointSize = v.Float32() },
		PathSnowColor: func(v params.Value) { d.SnowNode.Mesh.Material.Color = v.Color() },
	}

	for _, f := range d.Store.Fields() {
		fn, ok := bindings[f.Path]
		if !ok {
			continue
		}
		if err := d.Store.Bind(f.Path, fn); err != nil {
			return err
		}
	}
	return nil
}

// broadcast returns a binding that applies set to the material of every live
// node carrying tag, looked up in the registry when the value changes, and
// to the factory template so trees spawned later match.
func (d *Diorama) broadcast(tag scene.Tag, template *scene.Material, set func(*scene.Material, params.Value)) func(params.Value) {
	return func(v params.Value) {
		set(template, v)
		d.Scene.Registry.Each(tag, func(n *scene.Node) {
			if n.Mesh != nil {
				set(n.Mesh.Material, v)
			}
		})
	}
}
