package estimation

import (
	"bytes"
	"text/template"
)

const systemPrompt = `You are an expert ML infrastructure analyst. Given the training
configuration of a machine learning model, estimate the resources required to
train it. Respond with a single JSON object containing exactly these keys:

- "architecture": model architecture family
- "parameters": estimated parameter count
- "layers": number of layers
- "recommended_gpu": recommended GPU model and count
- "vram_required": total VRAM needed
- "cpu_cores": recommended CPU core count
- "ram": recommended system RAM
- "estimated_duration": estimated wall-clock training time
- "estimated_cost_usd": estimated training cost in USD
- "cloud_provider": cheapest suitable cloud provider
- "estimated_kwh": estimated energy consumption in kWh
- "carbon_emission_kg": estimated carbon emission in kg CO2e
- "optimization_recommendations": array of concrete optimization suggestions
- "confidence_level": "low", "medium", or "high"

Respond with the JSON object only. Do not add commentary.`

var userPromptTemplate = template.Must(template.New("userPrompt").Parse(
	`Analyze the following model training configuration and estimate the
resources required to train it:

{{.Params}}
`))

type promptData struct {
	Params string
}

// BuildUserPrompt embeds the model-configuration text into the fixed
// instructional template.
func BuildUserPrompt(params string) (string, error) {
	var buf bytes.Buffer
	if err := userPromptTemplate.Execute(&buf, promptData{Params: params}); err != nil {
		return "", err
	}

	return buf.String(), nil
}
