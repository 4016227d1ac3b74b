package prompts

import "fmt"

// DefaultStyle is substituted when the user gives no style preferences.
const DefaultStyle = "Modern, clean, and engaging"

const appBuilderTemplate = `Create a complete, beautiful, and modern web application based on this description:

%s

Requirements:
1. Create a single HTML file with embedded CSS and JavaScript
2. Use modern, responsive design with animations and transitions
3. Include interactive elements and smooth user experience
4. Use contemporary design trends (gradients, shadows, glassmorphism, etc.)
5. Ensure the app is fully functional, not just a mockup
6. Include proper semantic HTML and accessibility features
7. Make it visually stunning with attention to detail

Style preferences: %s

Please provide ONLY the complete HTML code without any explanations or markdown formatting.`

// AppBuilderPrompt assembles the instruction sent to the model. The
// description and style are interpolated verbatim.
func AppBuilderPrompt(description, style string) string {
	if style == "" {
		style = DefaultStyle
	}
	return fmt.Sprintf(appBuilderTemplate, description, style)
}
