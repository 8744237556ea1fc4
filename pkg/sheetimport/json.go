package sheetimport

import (
	"bytes"
	"encoding/json"

	"github.com/kaptinlin/jsonrepair"
)

// repairUnmarshal unmarshals model output that is supposed to be JSON
// but sometimes arrives wrapped in markdown fences or slightly
// malformed. Syntax errors are retried after a repair pass.
func repairUnmarshal(data []byte, v any) error {
	data = stripFences(data)
	err := json.Unmarshal(data, v)
	if err == nil {
		return nil
	}
	if _, ok := err.(*json.SyntaxError); ok {
		fixed, rerr := jsonrepair.JSONRepair(string(data))
		if rerr != nil {
			return err
		}
		return json.Unmarshal([]byte(fixed), v)
	}
	return err
}

func stripFences(data []byte) []byte {
	data = bytes.TrimSpace(data)
	if !bytes.HasPrefix(data, []byte("```")) {
		return data
	}
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		data = data[i+1:]
	}
	data = bytes.TrimSuffix(bytes.TrimSpace(data), []byte("```"))
	return bytes.TrimSpace(data)
}
