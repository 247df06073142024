package pentagon

// frameBlock mirrors uniforms.FrameUniforms; std140 packs four floats tightly.
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
` + frameBlock + `
		layout (location = 0) in vec3 aPos;
		layout (location = 1) in vec3 aColor;

		out vec3 vertexColor;

		void main() {
			float s = sin(run_time);
			float c = cos(run_time);
			vec2 p = mat2(c, s, -s, c) * aPos.xy;

			// Keep the pentagon regular on non-square viewports
			p.x *= viewport_height / max(viewport_width, 1.0);

			gl_Position = vec4(p, aPos.z, 1.0);
			vertexColor = aColor;
		}
`

const fragmentShaderSource = `
		#version 410 core

		in vec3 vertexColor;
		out vec4 FragColor;

		void main() {
			FragColor = vec4(vertexColor, 1.0);
		}
`
