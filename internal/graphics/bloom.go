package graphics

import (
	"errors"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// BloomSettings mirrors the usual bloom knobs: pixels brighter than Threshold
// glow, Strength scales the glow, and Radius (0–1) widens the blur.
type BloomSettings struct {
	Strength  float32
	Threshold float32
	Radius    float32
}

// blurPasses is the number of horizontal+vertical blur pairs per frame.
const blurPasses = 3

// Bloom owns the offscreen targets and shaders for the bloom + tone-map pipeline.
// The scene renders into a full-size target; the bright pass and blur run at half size.
type Bloom struct {
	settings BloomSettings
	scene    rl.RenderTexture2D
	ping     rl.RenderTexture2D
	pong     rl.RenderTexture2D
	width    int
	height   int

	bright    rl.Shader
	blur      rl.Shader
	composite rl.Shader

	thresholdLoc int32
	directionLoc int32
	spreadLoc    int32
	strengthLoc  int32
	bloomTexLoc  int32
}

// NewBloom compiles the shaders and allocates targets for a width×height surface.
// Must be called after the window exists.
func NewBloom(width, height int, s BloomSettings) (*Bloom, error) {
	b := &Bloom{settings: s}
	b.bright = rl.LoadShaderFromMemory(passVS, brightFS)
	b.blur = rl.LoadShaderFromMemory(passVS, blurFS)
	b.composite = rl.LoadShaderFromMemory(passVS, compositeFS)
	if !rl.IsShaderValid(b.bright) || !rl.IsShaderValid(b.blur) || !rl.IsShaderValid(b.composite) {
		b.unloadShaders()
		return nil, errors.New("graphics: bloom shaders failed to compile")
	}
	b.thresholdLoc = rl.GetShaderLocation(b.bright, "threshold")
	b.directionLoc = rl.GetShaderLocation(b.blur, "direction")
	b.spreadLoc = rl.GetShaderLocation(b.blur, "spread")
	b.strengthLoc = rl.GetShaderLocation(b.composite, "strength")
	b.bloomTexLoc = rl.GetShaderLocation(b.composite, "bloomTexture")
	b.Resize(width, height)
	return b, nil
}

// Resize reallocates the targets. Non-positive sizes are ignored.
func (b *Bloom) Resize(width, height int) {
	if width <= 0 || height <= 0 || (width == b.width && height == b.height) {
		return
	}
	b.unloadTargets()
	b.width, b.height = width, height
	b.scene = rl.LoadRenderTexture(int32(width), int32(height))
	hw, hh := int32(max(1, width/2)), int32(max(1, height/2))
	b.ping = rl.LoadRenderTexture(hw, hh)
	b.pong = rl.LoadRenderTexture(hw, hh)
	rl.SetTextureFilter(b.ping.Texture, rl.FilterBilinear)
	rl.SetTextureFilter(b.pong.Texture, rl.FilterBilinear)
}

// BeginScene redirects drawing into the scene target and clears it.
func (b *Bloom) BeginScene() {
	rl.BeginTextureMode(b.scene)
	rl.ClearBackground(rl.Black)
}

// EndScene finishes the scene target and runs the bright pass and blur.
func (b *Bloom) EndScene() {
	rl.EndTextureMode()

	rl.BeginTextureMode(b.ping)
	rl.ClearBackground(rl.Black)
	rl.BeginShaderMode(b.bright)
	setFloat(b.bright, b.thresholdLoc, b.settings.Threshold)
	drawTarget(b.scene, b.ping)
	rl.EndShaderMode()
	rl.EndTextureMode()

	spread := 1 + 2*clamp01(b.settings.Radius)
	for i := 0; i < blurPasses; i++ {
		b.blurInto(b.ping, b.pong, [2]float32{1 / float32(b.ping.Texture.Width), 0}, spread)
		b.blurInto(b.pong, b.ping, [2]float32{0, 1 / float32(b.ping.Texture.Height)}, spread)
	}
}

// Composite draws scene + Strength × glow to the current framebuffer with ACES tone mapping.
// Call between BeginDrawing and EndDrawing.
func (b *Bloom) Composite() {
	rl.BeginShaderMode(b.composite)
	setFloat(b.composite, b.strengthLoc, b.settings.Strength)
	if b.bloomTexLoc >= 0 {
		rl.SetShaderValueTexture(b.composite, b.bloomTexLoc, b.ping.Texture)
	}
	src := rl.NewRectangle(0, 0, float32(b.scene.Texture.Width), -float32(b.scene.Texture.Height))
	dst := rl.NewRectangle(0, 0, float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight()))
	rl.DrawTexturePro(b.scene.Texture, src, dst, rl.Vector2{}, 0, rl.White)
	rl.EndShaderMode()
}

// Unload frees GPU resources.
func (b *Bloom) Unload() {
	b.unloadTargets()
	b.unloadShaders()
}

func (b *Bloom) blurInto(from, to rl.RenderTexture2D, dir [2]float32, spread float32) {
	rl.BeginTextureMode(to)
	rl.ClearBackground(rl.Black)
	rl.BeginShaderMode(b.blur)
	if b.directionLoc >= 0 {
		rl.SetShaderValue(b.blur, b.directionLoc, dir[:], rl.ShaderUniformVec2)
	}
	setFloat(b.blur, b.spreadLoc, spread)
	drawTarget(from, to)
	rl.EndShaderMode()
	rl.EndTextureMode()
}

func (b *Bloom) unloadTargets() {
	if b.width == 0 {
		return
	}
	rl.UnloadRenderTexture(b.scene)
	rl.UnloadRenderTexture(b.ping)
	rl.UnloadRenderTexture(b.pong)
	b.width, b.height = 0, 0
}

func (b *Bloom) unloadShaders() {
	for _, s := range []rl.Shader{b.bright, b.blur, b.composite} {
		if rl.IsShaderValid(s) {
			rl.UnloadShader(s)
		}
	}
}

// drawTarget stretches from's texture over all of to. Render textures are
// stored upside down, hence the negative source height.
func drawTarget(from, to rl.RenderTexture2D) {
	src := rl.NewRectangle(0, 0, float32(from.Texture.Width), -float32(from.Texture.Height))
	dst := rl.NewRectangle(0, 0, float32(to.Texture.Width), float32(to.Texture.Height))
	rl.DrawTexturePro(from.Texture, src, dst, rl.Vector2{}, 0, rl.White)
}

func setFloat(s rl.Shader, loc int32, v float32) {
	if loc < 0 {
		return
	}
	rl.SetShaderValue(s, loc, []float32{v}, rl.ShaderUniformFloat)
}

func clamp01(v float32) float32 {
	return max(0, min(1, v))
}

// passVS forwards raylib's standard quad attributes; the fragment shaders below
// sample texture0, which raylib binds to the texture being drawn.
const (
	passVS = `#version 330
in vec3 vertexPosition;
in vec2 vertexTexCoord;
in vec4 vertexColor;
uniform mat4 mvp;
out vec2 fragTexCoord;
out vec4 fragColor;
void main() {
  fragTexCoord = vertexTexCoord;
  fragColor = vertexColor;
  gl_Position = mvp * vec4(vertexPosition, 1.0);
}
`
	brightFS = `#version 330
in vec2 fragTexCoord;
in vec4 fragColor;
uniform sampler2D texture0;
uniform float threshold;
out vec4 finalColor;
void main() {
  vec3 c = texture(texture0, fragTexCoord).rgb;
  float luma = dot(c, vec3(0.2126, 0.7152, 0.0722));
  float k = smoothstep(threshold, threshold + 0.01, luma);
  finalColor = vec4(c * k, 1.0);
}
`
	blurFS = `#version 330
in vec2 fragTexCoord;
in vec4 fragColor;
uniform sampler2D texture0;
uniform vec2 direction;
uniform float spread;
out vec4 finalColor;
const float weights[5] = float[](0.227027, 0.1945946, 0.1216216, 0.054054, 0.016216);
void main() {
  vec3 sum = texture(texture0, fragTexCoord).rgb * weights[0];
  for (int i = 1; i < 5; i++) {
    vec2 off = direction * spread * float(i);
    sum += texture(texture0, fragTexCoord + off).rgb * weights[i];
    sum += texture(texture0, fragTexCoord - off).rgb * weights[i];
  }
  finalColor = vec4(sum, 1.0);
}
`
	compositeFS = `#version 330
in vec2 fragTexCoord;
in vec4 fragColor;
uniform sampler2D texture0;
uniform sampler2D bloomTexture;
uniform float strength;
out vec4 finalColor;
vec3 aces(vec3 x) {
  const float a = 2.51;
  const float b = 0.03;
  const float c = 2.43;
  const float d = 0.59;
  const float e = 0.14;
  return clamp((x * (a * x + b)) / (x * (c * x + d) + e), 0.0, 1.0);
}
void main() {
  vec3 base = texture(texture0, fragTexCoord).rgb;
  vec3 glow = texture(bloomTexture, fragTexCoord).rgb;
  vec3 hdr = pow(base, vec3(2.2)) + strength * pow(glow, vec3(2.2));
  finalColor = vec4(pow(aces(hdr), vec3(1.0 / 2.2)), 1.0);
}
`
)
