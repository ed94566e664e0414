package app

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/nightreef/internal/assets"
	"github.com/Faultbox/nightreef/internal/config"
	"github.com/Faultbox/nightreef/internal/engine/actor"
	"github.com/Faultbox/nightreef/internal/engine/mesh"
	"github.com/Faultbox/nightreef/internal/engine/scene"
)

// loadAssets reads every mesh and starts the texture decodes. Missing
// files are collected into the returned error; whatever did load is
// uploaded regardless. It returns the texture names worth watching.
func loadAssets(m *assets.Manager, sc *scene.Scene, cfg config.AssetsConfig, log *zap.Logger) ([]string, error) {
	var errs []error

	creatures := make(map[actor.Kind]mesh.Batch, len(actor.Creatures))
	for _, k := range actor.Creatures {
		tris, err := m.LoadMesh(cfg.Mesh(k))
		if err != nil {
			errs = append(errs, fmt.Errorf("%s mesh: %w", k, err))
			continue
		}
		creatures[k] = mesh.Flatten(k.String(), tris)
		log.Debug("creature mesh loaded", zap.Stringer("kind", k), zap.Int("triangles", len(tris)))
	}
	if len(creatures) > 0 {
		if err := sc.LoadCreatures(creatures); err != nil {
			errs = append(errs, err)
		}
	}

	var textures []string
	tris, err := m.LoadMesh(cfg.Boat)
	if err != nil {
		errs = append(errs, fmt.Errorf("boat mesh: %w", err))
	} else {
		materials := map[string]string{}
		if cfg.BoatMaterials != "" {
			if materials, err = m.LoadMaterials(cfg.BoatMaterials); err != nil {
				errs = append(errs, fmt.Errorf("boat materials: %w", err))
				materials = map[string]string{}
			}
		}
		batches := mesh.GroupByMaterial(tris)
		if err := sc.LoadBoat(batches, materials, m); err != nil {
			errs = append(errs, err)
		}
		for _, tex := range materials {
			textures = append(textures, tex)
		}
		log.Debug("boat mesh loaded", zap.Int("triangles", len(tris)), zap.Int("batches", len(batches)))
	}

	if cfg.WaterNormal != "" {
		sc.LoadWaterNormals(m, cfg.WaterNormal)
		textures = append(textures, cfg.WaterNormal)
	}

	if faces, ok := cfg.SkyboxFaces(); ok {
		sc.LoadSkybox(m, faces)
		textures = append(textures, faces[:]...)
	} else {
		log.Warn("skybox disabled, six faces required", zap.Int("faces", len(cfg.Skybox)))
	}

	return textures, errors.Join(errs...)
}

// watchTextures tracks the given names. Files that cannot be watched are
// logged and skipped.
func watchTextures(w *assets.Watcher, names []string, log *zap.Logger) {
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if seen[name] {
			continue
		}
		seen[name] = true
		if err := w.Track(name); err != nil {
			log.Warn("not watching texture", zap.String("name", name), zap.Error(err))
		}
	}
}
