package anchor

// DrawData is everything a backend needs to render one frame.
// It is valid from Render until the next NewFrame.
type DrawData struct {
	Valid         bool
	CmdLists      []*DrawList
	TotalVtxCount int
	TotalIdxCount int
	DisplayPos    Vec2
	DisplaySize   Vec2
}

func (dd *DrawData) clear() {
	dd.Valid = false
	dd.CmdLists = dd.CmdLists[:0]
	dd.TotalVtxCount = 0
	dd.TotalIdxCount = 0
}

func (dd *DrawData) add(dl *DrawList) {
	if dl == nil {
		return
	}
	dl.Finalize()
	if len(dl.CmdBuffer) == 0 {
		return
	}
	dd.CmdLists = append(dd.CmdLists, dl)
	dd.TotalVtxCount += len(dl.VtxBuffer)
	dd.TotalIdxCount += len(dl.IdxBuffer)
}

// ScaleClipRects multiplies every clip rectangle by scale, for hosts whose
// framebuffer resolution differs from window coordinates.
func (dd *DrawData) ScaleClipRects(scale Vec2) {
	for _, dl := range dd.CmdLists {
		for i := range dl.CmdBuffer {
			cr := &dl.CmdBuffer[i].ClipRect
			cr[0] *= scale.X
			cr[1] *= scale.Y
			cr[2] *= scale.X
			cr[3] *= scale.Y
		}
	}
}
