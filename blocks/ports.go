package blocks

// Renderer draws game snapshots. Render is called once per frame and must
// not retain s.Grid or s.Active beyond the next call.
type Renderer interface {
	Render(s State)
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(s State)

func (f RendererFunc) Render(s State) { f(s) }

// Controller receives player input. Input sources translate their native
// events into Commands and restart requests.
type Controller interface {
	Apply(cmd Command) bool
	Restart()
}
