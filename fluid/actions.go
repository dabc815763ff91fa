package fluid

// OnClick runs the configured click action. It does nothing when onClick is
// absent for the composition.
func (b *Bridge) OnClick() {
	opts := b.State.Options
	if !opts.Has(FieldOnClick) {
		return
	}
	switch ChangeAction(opts.OnClick) {
	case ActionRegenerate:
		b.Regenerate()
	case ActionReset:
		b.Engine.ResetLayers()
	case ActionAddNew:
		limit := opts.MaxLayers
		if !opts.Has(FieldMaxLayers) {
			limit = b.State.Features.Layers
		}
		if len(b.layers) < limit {
			b.Engine.AddNewLayer()
		}
	}
}

// Regenerate re-synthesizes every view from its base values and restarts
// the layers.
func (b *Bridge) Regenerate() {
	for i, view := range b.State.Views {
		b.Synth.InitView(b.State, i, view)
		b.Engine.UpdateView(i, view)
	}
	b.Engine.ResetLayers()
	b.Engine.ResetFrame()
}
