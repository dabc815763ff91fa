package fluid

import (
	"testing"

	"github.com/simukka/fluid-sketch/common"
)

func newTestBridge(cfg Config) (*Bridge, *fakeEngine) {
	rng := common.NewSeededRNG(10)
	state := NewState(cfg, rng)
	eng := newFakeEngine()
	return NewBridge(state, eng, rng, nil), eng
}

func TestDispatcher_BoxComposition(t *testing.T) {
	b, eng := newTestBridge(testConfig(CompBox, 1, CompSea))
	view := b.State.View(0)
	view.BlendModeView = SubtractiveBlending
	view.BlendModePass = AdditiveBlending

	b.Dispatcher.Construct()

	if eng.background != b.State.Palette.Background() {
		t.Errorf("Expected background %q, got %q", b.State.Palette.Background(), eng.background)
	}
	if !eng.controls {
		t.Error("Expected orbit controls on the box")
	}
	if eng.volume == nil || eng.volume.size != BoxSize || eng.volume.blending != SubtractiveBlending {
		t.Fatalf("Expected a %d volume blending with the view mode, got %+v", BoxSize, eng.volume)
	}
	target := eng.volume.target
	if len(target.passes) != 1 || target.passes[0] != view || target.blending[0] != AdditiveBlending {
		t.Errorf("Expected one pass bound to view 0 with its pass blend mode, got %+v", target)
	}
	if len(target.indexes) != 1 || target.indexes[0] != 0 {
		t.Errorf("Expected the pass to be keyed by view 0, got %v", target.indexes)
	}
	if eng.layers != 0 || eng.pipeline != 0 || eng.overlay != nil {
		t.Error("Expected no layer stack or overlay for the box")
	}
}

func TestDispatcher_BoxRegenerateUpdatesPassView(t *testing.T) {
	b, eng := newTestBridge(testConfig(CompBox, 1, CompSea))
	b.Dispatcher.Construct()
	target := eng.volume.target

	b.Regenerate()

	if len(eng.updatedViews) != 1 || eng.updatedViews[0] != target.indexes[0] {
		t.Errorf("Expected regenerate to update view %d, got %v", target.indexes[0], eng.updatedViews)
	}
	if b.State.Views[0] != target.passes[0] {
		t.Error("Expected the regenerated record to be the one the pass was built on")
	}
}

func TestDispatcher_DefaultLayers(t *testing.T) {
	cfg := testConfig(CompSea, 3, CompSea)
	b, eng := newTestBridge(cfg)

	b.Dispatcher.Construct()

	if eng.layers != 3 {
		t.Errorf("Expected 3 layers, got %d", eng.layers)
	}
	if eng.pipeline != 0 {
		t.Error("Expected no pipeline")
	}
	if eng.background != "" {
		t.Errorf("Expected no background, got %q", eng.background)
	}
	if eng.overlay == nil || b.Dispatcher.Overlay == nil {
		t.Error("Expected the snapshot overlay to be created")
	}
	if len(eng.timers) != 0 {
		t.Error("Expected no scheduled change with maxChanges 0")
	}
}

func TestDispatcher_PipelineAndBackground(t *testing.T) {
	cfg := testConfig(CompStone, 2, CompStone)
	cfg.Options.UsePipeline = true
	cfg.Options.Background = true
	b, eng := newTestBridge(cfg)

	b.Dispatcher.Construct()

	if eng.pipeline != 2 || eng.layers != 0 {
		t.Errorf("Expected a 2-layer pipeline only, got pipeline=%d layers=%d", eng.pipeline, eng.layers)
	}
	if eng.background != b.State.Palette.Background() {
		t.Errorf("Expected background %q, got %q", b.State.Palette.Background(), eng.background)
	}
}

func TestDispatcher_UnknownCompositionFallsBack(t *testing.T) {
	b, eng := newTestBridge(testConfig("marble", 2, CompSea))

	b.Dispatcher.Construct()

	if eng.layers != 2 || eng.volume != nil {
		t.Error("Expected the default layout for an unknown composition")
	}
}

func TestDispatcher_SchedulesChanges(t *testing.T) {
	cfg := testConfig(CompSea, 2, CompSea)
	cfg.Options.MaxChanges = 3
	b, eng := newTestBridge(cfg)

	b.Dispatcher.Construct()

	if len(eng.timers) != 1 {
		t.Fatalf("Expected one pending change, got %d", len(eng.timers))
	}
	if d := eng.timers[0].delay; d < ChangeDelayMin || d >= ChangeDelayMax {
		t.Errorf("change delay %f out of range", d)
	}
}

func TestDispatcher_NoScheduleWithoutMaxChangesField(t *testing.T) {
	cfg := testConfig(CompSea, 2, CompSea)
	cfg.Options.MaxChanges = 3
	cfg.Profiles[CompSea] = NewFieldSet(AllFields...).Without(FieldMaxChanges)
	b, eng := newTestBridge(cfg)

	b.Dispatcher.Construct()

	if len(eng.timers) != 0 {
		t.Errorf("Expected no scheduled change without maxChanges, got %d", len(eng.timers))
	}
}

func TestDispatcher_Render(t *testing.T) {
	box, boxEng := newTestBridge(testConfig(CompBox, 1, CompSea))
	box.Dispatcher.Construct()
	box.Dispatcher.Render()
	if boxEng.volume.target.renders != 1 || boxEng.renders != 0 {
		t.Error("Expected the box to render its target only")
	}

	layered, eng := newTestBridge(testConfig(CompSea, 2, CompSea))
	layered.Dispatcher.Construct()
	layered.Dispatcher.Render()
	if eng.renders != 1 {
		t.Errorf("Expected one layer render, got %d", eng.renders)
	}
}
