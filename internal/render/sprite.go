package render

// Hit flash atlases are 4x4 grids. Frames 1-16 come from map134 and
// frames 17-31 from map567; frame 0 and the final frame show no flash.
const (
	atlasColumns   = 4
	framesPerAtlas = atlasColumns * atlasColumns
	lastFrame      = 32
)

// Sprite atlas selectors, matching spriteAtlas in the note shader.
const (
	atlasNone int32 = iota
	atlas134
	atlas567
)

// spriteCell locates a hit flash frame. UV offset and size are in atlas
// texture space.
type spriteCell struct {
	Atlas   int32
	OffsetU float32
	OffsetV float32
	Size    float32
}

func spriteFrame(index int) spriteCell {
	if index <= 0 || index >= lastFrame {
		return spriteCell{Atlas: atlasNone, Size: 1}
	}

	atlas := atlas134
	cell := index - 1
	if cell >= framesPerAtlas {
		atlas = atlas567
		cell -= framesPerAtlas
	}

	size := float32(1) / atlasColumns
	col := cell % atlasColumns
	row := cell / atlasColumns
	return spriteCell{
		Atlas:   atlas,
		OffsetU: float32(col) * size,
		OffsetV: float32(row) * size,
		Size:    size,
	}
}
