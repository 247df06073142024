package uiquad

const vertexShaderSource = `
		#version 410 core

		layout (std140) uniform Frame {
			float delta_time;
			float run_time;
			float viewport_width;
			float viewport_height;
		};

		layout (location = 0) in vec3 aPos;

		out vec2 panelUV;

		void main() {
			vec2 p = aPos.xy;
			p.x *= viewport_height / max(viewport_width, 1.0);

			gl_Position = vec4(p, aPos.z, 1.0);
			panelUV = aPos.xy * 2.0 + 0.5;
		}
`

const fragmentShaderSource = `
		#version 410 core

		in vec2 panelUV;
		out vec4 FragColor;

		void main() {
			// Darker toward the bottom edge
			vec3 color = mix(vec3(0.08, 0.08, 0.12), vec3(0.25, 0.25, 0.35), panelUV.y);
			FragColor = vec4(color, 0.6);
		}
`
