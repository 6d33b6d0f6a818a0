package render

const noteVertexShader = `
#version 410 core

layout (location = 0) in vec3 aPosition;
layout (location = 1) in vec3 aNormal;
layout (location = 2) in vec2 aTexCoord;

uniform mat4 model;
uniform mat4 view;
uniform mat4 projection;

out vec3 vWorldPos;
out vec3 vNormal;
out vec2 vTexCoord;

void main() {
    vec4 world = model * vec4(aPosition, 1.0);
    vWorldPos = world.xyz;
    vNormal = mat3(transpose(inverse(model))) * aNormal;
    vTexCoord = aTexCoord;
    gl_Position = projection * view * world;
}
`

const noteFragmentShader = `
#version 410 core

in vec3 vWorldPos;
in vec3 vNormal;
in vec2 vTexCoord;

uniform sampler2D shapeTexture;
uniform sampler2D map134;
uniform sampler2D map567;
uniform vec3 color;
uniform vec3 accent;
uniform vec3 lightPosition;
uniform float brightness;

// Hit flash: which atlas (0 none, 1 map134, 2 map567) and the cell.
uniform int spriteAtlas;
uniform vec2 spriteOffset;
uniform vec2 spriteSize;

out vec4 FragColor;

void main() {
    vec3 n = normalize(vNormal);
    vec3 l = normalize(lightPosition - vWorldPos);
    float diffuse = max(dot(n, l), 0.0) * 0.7 + 0.3;

    float mask = texture(shapeTexture, vTexCoord).r;
    vec3 base = mix(color, accent, mask) * diffuse;

    vec2 cell = spriteOffset + vTexCoord * spriteSize;
    vec4 flash = vec4(0.0);
    if (spriteAtlas == 1) {
        flash = texture(map134, cell);
    } else if (spriteAtlas == 2) {
        flash = texture(map567, cell);
    }

    vec3 lit = mix(base, flash.rgb, flash.a) + vec3(brightness);
    FragColor = vec4(lit, 1.0);
}
`

const shadowVertexShader = `
#version 410 core

layout (location = 0) in vec3 aPosition;
layout (location = 2) in vec2 aTexCoord;

uniform mat4 model;
uniform mat4 view;
uniform mat4 projection;

out vec2 vTexCoord;

void main() {
    vTexCoord = aTexCoord;
    gl_Position = projection * view * model * vec4(aPosition, 1.0);
}
`

const shadowFragmentShader = `
#version 410 core

in vec2 vTexCoord;

uniform float opacity;

out vec4 FragColor;

void main() {
    FragColor = vec4(0.0, 0.0, 0.0, opacity);
}
`
