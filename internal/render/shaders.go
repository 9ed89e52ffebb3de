package render

const meshVertexShader = `
#version 410
layout(location = 0) in vec3 position;
layout(location = 1) in vec3 normal;
layout(location = 2) in vec2 uv;

uniform mat4 model;
uniform mat4 view;
uniform mat4 projection;

out vec3 vNormal;
out vec2 vUV;

void main() {
	vNormal = mat3(transpose(inverse(model))) * normal;
	vUV = uv;
	gl_Position = projection * view * model * vec4(position, 1.0);
}
`

const meshFragmentShader = `
#version 410
in vec3 vNormal;
in vec2 vUV;

uniform sampler2D map;
uniform vec3 color;
uniform float opacity;
uniform int lit;

uniform vec3 emissive;
uniform float emissiveIntensity;
uniform float roughness;
uniform float metalness;

uniform vec3 ambientColor;
uniform float ambientIntensity;
uniform vec3 sunColor;
uniform float sunIntensity;
uniform vec3 sunDirection;

out vec4 fragColor;

void main() {
	vec4 tex = texture(map, vUV);
	vec3 base = color * tex.rgb;
	if (lit == 0) {
		fragColor = vec4(base, tex.a * opacity);
		return;
	}

	vec3 n = normalize(vNormal);
	vec3 l = normalize(sunDirection);
	float diffuse = max(dot(n, l), 0.0);
	vec3 h = normalize(l + vec3(0.0, 0.0, 1.0));
	float shininess = mix(64.0, 2.0, roughness);
	float spec = pow(max(dot(n, h), 0.0), shininess) * (1.0 - roughness) * mix(0.04, 1.0, metalness);

	vec3 light = ambientColor * ambientIntensity + sunColor * sunIntensity * diffuse;
	vec3 rgb = base * light * (1.0 - metalness) + sunColor * spec + emissive * emissiveIntensity;
	fragColor = vec4(rgb, opacity);
}
`

const pointsVertexShader = `
#version 410
layout(location = 0) in vec3 position;
layout(location = 1) in vec3 color;

uniform mat4 modelView;
uniform mat4 projection;
uniform float size;
uniform float scale;
uniform int vertexColors;
uniform vec3 tint;

out vec3 vColor;

void main() {
	vec4 mv = modelView * vec4(position, 1.0);
	vColor = vertexColors == 1 ? color * tint : tint;
	gl_PointSize = size * scale / -mv.z;
	gl_Position = projection * mv;
}
`

const pointsFragmentShader = `
#version 410
in vec3 vColor;

uniform sampler2D map;
uniform int hasMap;
uniform float opacity;

out vec4 fragColor;

void main() {
	vec4 tex = hasMap == 1 ? texture(map, gl_PointCoord) : vec4(1.0);
	fragColor = vec4(vColor * tex.rgb, tex.a * opacity);
}
`

const overlayVertexShader = `
#version 410
layout(location = 0) in vec2 corner;

uniform vec4 rect;
uniform vec2 viewport;

out vec2 vUV;

void main() {
	vec2 px = rect.xy + corner * rect.zw;
	vUV = corner;
	gl_Position = vec4(px.x / viewport.x * 2.0 - 1.0, 1.0 - px.y / viewport.y * 2.0, 0.0, 1.0);
}
`

const overlayFragmentShader = `
#version 410
in vec2 vUV;

uniform sampler2D map;
uniform float opacity;

out vec4 fragColor;

void main() {
	vec4 tex = texture(map, vUV);
	fragColor = vec4(tex.rgb, tex.a * opacity);
}
`
