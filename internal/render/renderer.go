package render

import (
	"fmt"
	"sort"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/tonefield/internal/geometry"
	"github.com/Faultbox/tonefield/internal/logger"
	"github.com/Faultbox/tonefield/internal/material"
	"github.com/Faultbox/tonefield/internal/scene"
	"github.com/Faultbox/tonefield/pkg/math"
)

// Config holds renderer configuration.
type Config struct {
	Width    int
	Height   int
	AssetDir string
}

// Fixed texture units per sampler uniform.
var textureUnits = map[string]uint32{
	material.UniformShapeTexture: 0,
	material.UniformMap134:       1,
	material.UniformMap567:       2,
}

// Renderer draws scene graphs of note and shadow meshes.
type Renderer struct {
	config   Config
	Camera   Camera
	programs map[material.Shader]*Program
	meshes   map[*geometry.Geometry]*gpuMesh
	textures *textureCache
}

// New creates a renderer.
// Must be called after the OpenGL context is created.
func New(cfg Config) (*Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	r := &Renderer{
		config:   cfg,
		Camera:   DefaultCamera(),
		programs: make(map[material.Shader]*Program),
		meshes:   make(map[*geometry.Geometry]*gpuMesh),
	}

	sources := map[material.Shader][2]string{
		material.ShaderNote:   {noteVertexShader, noteFragmentShader},
		material.ShaderShadow: {shadowVertexShader, shadowFragmentShader},
	}
	for shader, src := range sources {
		p, err := NewProgram(src[0], src[1])
		if err != nil {
			r.Close()
			return nil, fmt.Errorf("%s program: %w", shader, err)
		}
		r.programs[shader] = p
	}
	r.textures = newTextureCache(cfg.AssetDir)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.ClearColor(0.1, 0.1, 0.15, 1.0)
	return r, nil
}

// Close frees every GPU resource the renderer created.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	for _, m := range r.meshes {
		m.delete()
	}
	for _, p := range r.programs {
		p.Delete()
	}
	if r.textures != nil {
		r.textures.delete()
	}
}

// Resize updates the viewport.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized", zap.Int("width", width), zap.Int("height", height))
}

// Draw clears the frame and draws every visible mesh under root. Opaque
// meshes go first; transparent ones follow back to front without depth
// writes.
func (r *Renderer) Draw(root *scene.Group) {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	view := r.Camera.View()
	proj := r.Camera.Projection(float32(r.config.Width) / float32(max(r.config.Height, 1)))
	opaque, transparent := drawList(root, r.Camera.Eye)

	for _, m := range opaque {
		r.drawMesh(m, &view, &proj)
	}

	if len(transparent) > 0 {
		gl.Enable(gl.BLEND)
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
		gl.DepthMask(false)
		for _, m := range transparent {
			r.drawMesh(m, &view, &proj)
		}
		gl.DepthMask(true)
		gl.Disable(gl.BLEND)
	}
}

func (r *Renderer) drawMesh(m *scene.Mesh, view, proj *math.Mat4) {
	p, ok := r.programs[m.Material.Shader]
	if !ok {
		return
	}
	p.Use()

	model := m.WorldMatrix()
	gl.UniformMatrix4fv(p.Uniform("model"), 1, false, model.Ptr())
	gl.UniformMatrix4fv(p.Uniform("view"), 1, false, view.Ptr())
	gl.UniformMatrix4fv(p.Uniform("projection"), 1, false, proj.Ptr())
	r.bindMaterial(p, m.Material)

	r.mesh(m.Geometry).draw()
}

func (r *Renderer) mesh(g *geometry.Geometry) *gpuMesh {
	gm, ok := r.meshes[g]
	if !ok {
		gm = uploadMesh(g)
		r.meshes[g] = gm
		logger.Debug("geometry uploaded",
			zap.String("geometry", g.Name),
			zap.Int("triangles", g.TriangleCount()),
		)
	}
	return gm
}

func (r *Renderer) bindMaterial(p *Program, m *material.Material) {
	for name, unit := range textureUnits {
		gl.ActiveTexture(gl.TEXTURE0 + unit)
		gl.BindTexture(gl.TEXTURE_2D, r.textures.get(m.Texture(name)))
		gl.Uniform1i(p.Uniform(name), int32(unit))
	}

	for _, name := range m.Names() {
		value, _ := m.Value(name)
		switch v := value.(type) {
		case float32:
			gl.Uniform1f(p.Uniform(name), v)
		case int:
			if name == material.UniformSpriteIndex {
				cell := spriteFrame(v)
				gl.Uniform1i(p.Uniform("spriteAtlas"), cell.Atlas)
				gl.Uniform2f(p.Uniform("spriteOffset"), cell.OffsetU, cell.OffsetV)
				gl.Uniform2f(p.Uniform("spriteSize"), cell.Size, cell.Size)
				continue
			}
			gl.Uniform1i(p.Uniform(name), int32(v))
		case math.Vec3:
			gl.Uniform3f(p.Uniform(name), v.X, v.Y, v.Z)
		case [3]float32:
			gl.Uniform3f(p.Uniform(name), v[0], v[1], v[2])
		}
	}
}

// drawList splits the visible meshes under root into opaque and
// transparent ones. Transparent meshes are sorted farthest from eye first.
func drawList(root *scene.Group, eye math.Vec3) (opaque, transparent []*scene.Mesh) {
	root.Walk(func(m *scene.Mesh) {
		if m.Geometry == nil || m.Material == nil {
			return
		}
		if m.Material.Transparent {
			transparent = append(transparent, m)
		} else {
			opaque = append(opaque, m)
		}
	})

	dist := make(map[*scene.Mesh]float32, len(transparent))
	for _, m := range transparent {
		d := m.WorldPosition().Sub(eye)
		dist[m] = d.Dot(d)
	}
	sort.SliceStable(transparent, func(i, j int) bool {
		return dist[transparent[i]] > dist[transparent[j]]
	})
	return opaque, transparent
}
