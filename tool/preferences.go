package tool

import "fmt"

// preferencesKey is the conversation context key under which remembered
// traveler preferences are stored as a map[string]any.
const preferencesKey = "traveler_preferences"

// NewRememberPreferenceTool returns a tool that lets agents persist traveler
// preferences (seat choice, dietary needs, hotel style) into the conversation
// context so they survive across turns and are visible to every specialist
// that shares the conversation.
func NewRememberPreferenceTool() *FunctionTool {
	return NewFunctionTool(
		"remember_preference",
		"Remember a traveler preference for the rest of the conversation, e.g. preference='seat' value='window'",
		map[string]any{
			"type": "object",
			"properties": map[string]any{
				"preference": map[string]any{
					"type":        "string",
					"description": "Name of the preference, e.g. 'seat', 'diet', 'hotel_style'",
				},
				"value": map[string]any{
					"type":        "string",
					"description": "The traveler's stated preference value",
				},
			},
			"required": []string{"preference", "value"},
		},
		func(toolCtx *Context, args map[string]any) (any, error) {
			preference, _ := args["preference"].(string)
			value, _ := args["value"].(string)

			prefs := map[string]any{}
			if stored, ok := toolCtx.GetState(preferencesKey); ok {
				if m, ok := stored.(map[string]any); ok {
					for k, v := range m {
						prefs[k] = v
					}
				}
			}
			prefs[preference] = value

			toolCtx.SetState(preferencesKey, prefs)

			return map[string]any{
				"status":  "remembered",
				"message": fmt.Sprintf("Noted: %s = %s", preference, value),
			}, nil
		},
	)
}

// RememberedPreferences reads the preferences previously stored for the
// conversation. It returns an empty map when none have been remembered.
func RememberedPreferences(toolCtx *Context) map[string]any {
	stored, ok := toolCtx.GetState(preferencesKey)
	if !ok {
		return map[string]any{}
	}

	m, ok := stored.(map[string]any)
	if !ok {
		return map[string]any{}
	}

	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}

	return out
}
