package complexgrapher

import "strconv"

const frameBlock = `
		layout (std140) uniform Frame {
			float delta_time;
			float run_time;
			float viewport_width;
			float viewport_height;
		};
`

const vertexShaderSource = `
		#version 410 core

		layout (location = 0) in vec3 aPos;

		void main() {
			gl_Position = vec4(aPos, 1.0);
		}
`

// fragmentShaderSource maps each pixel to a point z of the complex plane, the
// shorter viewport axis spanning [-extent, extent], and domain-colors
// f(z) = e^(i t) (z^2 - 1)(z - 2 - i)^2 / (z^2 + 2 + 2i).
func fragmentShaderSource(extent float32) string {
	return `
		#version 410 core
		#define EXTENT ` + strconv.FormatFloat(float64(extent), 'f', 4, 32) + `
` + frameBlock + fragmentBody
}

const fragmentBody = `
		out vec4 FragColor;

		const float PI = 3.14159265358979;

		vec2 cmul(vec2 a, vec2 b) {
			return vec2(a.x * b.x - a.y * b.y, a.x * b.y + a.y * b.x);
		}

		vec2 cdiv(vec2 a, vec2 b) {
			return vec2(a.x * b.x + a.y * b.y, a.y * b.x - a.x * b.y) / max(dot(b, b), 1e-12);
		}

		vec3 hsv2rgb(vec3 c) {
			vec3 p = abs(fract(c.xxx + vec3(0.0, 2.0 / 3.0, 1.0 / 3.0)) * 6.0 - 3.0);
			return c.z * mix(vec3(1.0), clamp(p - 1.0, 0.0, 1.0), c.y);
		}

		vec2 f(vec2 z) {
			vec2 one = vec2(1.0, 0.0);
			vec2 a = cmul(z, z) - one;
			vec2 b = z - vec2(2.0, 1.0);
			vec2 num = cmul(a, cmul(b, b));
			vec2 den = cmul(z, z) + vec2(2.0, 2.0);
			vec2 spin = vec2(cos(run_time), sin(run_time));
			return cmul(spin, cdiv(num, den));
		}

		void main() {
			vec2 size = vec2(max(viewport_width, 1.0), max(viewport_height, 1.0));
			float scale = 2.0 * EXTENT / min(size.x, size.y);
			vec2 z = (gl_FragCoord.xy - 0.5 * size) * scale;

			vec2 w = f(z);
			float hue = atan(w.y, w.x) / (2.0 * PI) + 0.5;
			float bands = fract(log2(max(length(w), 1e-12)));
			float value = 0.6 + 0.4 * bands;

			FragColor = vec4(hsv2rgb(vec3(hue, 0.85, value)), 1.0);
		}
`
