package commands

// DevicesCommand lists the candidate input nodes and which of them qualify
// as touch devices
func DevicesCommand() *CommandResponse {
	list := prober.ListInputDevices(nil)

	touch := ""
	for _, d := range list {
		if d.Touch {
			touch = d.Path
			break
		}
	}

	return NewSuccessResponse(map[string]interface{}{
		"devices": list,
		"touch":   touch,
	})
}
