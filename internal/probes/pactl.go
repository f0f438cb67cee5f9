package probes

import (
	"strconv"
	"strings"
)

// Parsers for the block-structured output of pactl list. Sink and card blocks
// start at a "Sink #N" / "Card #N" boundary; fields are indented "Key: value"
// lines below it. State: precedes Name: inside a sink block, so fields are
// collected per block and the block is matched against the target once it
// closes.

type sinkInfo struct {
	name             string
	description      string
	state            string
	activePort       string
	portAvailability string
}

// parseSinkInfo extracts the named sink from `pactl list sinks` output.
func parseSinkInfo(output, targetSink string) (sinkInfo, bool) {
	var current sinkInfo
	inBlock := false
	inPorts := false

	for _, line := range strings.Split(output, "\n") {
		trimmed := strings.TrimSpace(line)

		if strings.HasPrefix(trimmed, "Sink #") {
			if inBlock && current.name == targetSink {
				return current, true
			}
			current = sinkInfo{}
			inBlock = true
			inPorts = false
			continue
		}
		if !inBlock {
			continue
		}

		switch {
		case strings.HasPrefix(trimmed, "Name:"):
			current.name = strings.TrimSpace(strings.TrimPrefix(trimmed, "Name:"))
		case strings.HasPrefix(trimmed, "Description:"):
			current.description = strings.TrimSpace(strings.TrimPrefix(trimmed, "Description:"))
		case strings.HasPrefix(trimmed, "State:"):
			current.state = strings.TrimSpace(strings.TrimPrefix(trimmed, "State:"))
		case strings.HasPrefix(trimmed, "Active Port:"):
			current.activePort = strings.TrimSpace(strings.TrimPrefix(trimmed, "Active Port:"))
		case strings.HasPrefix(trimmed, "Ports:"):
			inPorts = true
		case inPorts && current.activePort != "" && strings.Contains(trimmed, current.activePort):
			if strings.Contains(trimmed, "not available") {
				current.portAvailability = "not available"
			} else if strings.Contains(trimmed, "available") {
				current.portAvailability = "available"
			}
		}
	}

	if inBlock && current.name == targetSink {
		return current, true
	}
	return sinkInfo{}, false
}

// parseMuteAndVolume returns the mute flag and first volume percentage of the
// named sink. Either value may be absent when the output is incomplete.
func parseMuteAndVolume(output, targetSink string) (muted *bool, volumePercent *int) {
	inTarget := false

	for _, line := range strings.Split(output, "\n") {
		trimmed := strings.TrimSpace(line)

		if name, ok := strings.CutPrefix(trimmed, "Name:"); ok {
			inTarget = strings.TrimSpace(name) == targetSink
			continue
		}
		if !inTarget {
			continue
		}

		if value, ok := strings.CutPrefix(trimmed, "Mute:"); ok {
			isMuted := strings.EqualFold(strings.TrimSpace(value), "yes")
			muted = &isMuted
		}
		if strings.HasPrefix(trimmed, "Volume:") && volumePercent == nil {
			// Volume: front-left: 65536 / 100% / 0.00 dB, ...
			if percent, ok := firstPercent(trimmed); ok {
				volumePercent = &percent
			}
		}
		if muted != nil && volumePercent != nil {
			break
		}
	}
	return muted, volumePercent
}

func firstPercent(line string) (int, bool) {
	idx := strings.IndexByte(line, '%')
	if idx < 0 {
		return 0, false
	}
	start := idx
	for start > 0 && line[start-1] >= '0' && line[start-1] <= '9' {
		start--
	}
	if start == idx {
		return 0, false
	}
	value, err := strconv.Atoi(line[start:idx])
	if err != nil {
		return 0, false
	}
	return value, true
}

type sinkInput struct {
	appName   string
	sinkIndex int
}

// parseSinkInputs extracts active streams from `pactl list sink-inputs`.
func parseSinkInputs(output string) []sinkInput {
	var inputs []sinkInput
	sinkIndex := -1
	appName := ""

	flush := func() {
		if sinkIndex < 0 {
			return
		}
		name := appName
		if name == "" {
			name = "Unknown"
		}
		inputs = append(inputs, sinkInput{appName: name, sinkIndex: sinkIndex})
	}

	for _, line := range strings.Split(output, "\n") {
		trimmed := strings.TrimSpace(line)

		if value, ok := strings.CutPrefix(trimmed, "Sink:"); ok {
			flush()
			sinkIndex = -1
			appName = ""
			if idx, err := strconv.Atoi(strings.TrimSpace(value)); err == nil {
				sinkIndex = idx
			}
			continue
		}
		if value, ok := strings.CutPrefix(trimmed, "application.name = "); ok {
			appName = strings.Trim(strings.TrimSpace(value), `"`)
		}
		if appName == "" {
			if value, ok := strings.CutPrefix(trimmed, "media.name = "); ok {
				appName = strings.Trim(strings.TrimSpace(value), `"`)
			}
		}
	}
	flush()
	return inputs
}

// parseSinkIndexMap maps sink indices to sink names from `pactl list sinks`.
func parseSinkIndexMap(output string) map[int]string {
	sinks := make(map[int]string)
	index := -1

	for _, line := range strings.Split(output, "\n") {
		trimmed := strings.TrimSpace(line)

		if value, ok := strings.CutPrefix(trimmed, "Sink #"); ok {
			if idx, err := strconv.Atoi(strings.TrimSpace(value)); err == nil {
				index = idx
			} else {
				index = -1
			}
			continue
		}
		if index >= 0 {
			if name, ok := strings.CutPrefix(trimmed, "Name:"); ok {
				sinks[index] = strings.TrimSpace(name)
				index = -1
			}
		}
	}
	return sinks
}

type bluetoothCard struct {
	name              string
	description       string
	activeProfile     string
	availableProfiles []string
	sinks             []string
}

// parseBluetoothCards extracts bluez cards from `pactl list cards` output.
func parseBluetoothCards(output string) []bluetoothCard {
	var cards []bluetoothCard
	var current bluetoothCard
	isBluetooth := false
	inProfiles := false
	inSinks := false

	flush := func() {
		if isBluetooth && current.name != "" {
			cards = append(cards, current)
		}
	}

	for _, line := range strings.Split(output, "\n") {
		trimmed := strings.TrimSpace(line)

		if name, ok := strings.CutPrefix(trimmed, "Name:"); ok {
			flush()
			current = bluetoothCard{name: strings.TrimSpace(name)}
			isBluetooth = strings.Contains(current.name, "bluez") || strings.Contains(current.name, "bluetooth")
			inProfiles = false
			inSinks = false
			continue
		}
		if !isBluetooth {
			continue
		}

		switch {
		case strings.HasPrefix(trimmed, "device.description = "):
			current.description = strings.Trim(strings.TrimPrefix(trimmed, "device.description = "), `"`)
		case strings.HasPrefix(trimmed, "Active Profile:"):
			current.activeProfile = strings.TrimSpace(strings.TrimPrefix(trimmed, "Active Profile:"))
		case trimmed == "Profiles:" || strings.HasPrefix(trimmed, "Profiles:"):
			inProfiles = true
			inSinks = false
		case trimmed == "Sinks:" || strings.HasPrefix(trimmed, "Sinks:"):
			inSinks = true
			inProfiles = false
		case strings.HasPrefix(trimmed, "Ports:"):
			inProfiles = false
			inSinks = false
		case inProfiles:
			// a2dp-sink: A2DP Sink (sinks: 1, sources: 0, priority: 40, available: yes)
			if colon := strings.IndexByte(trimmed, ':'); colon > 0 {
				profile := strings.TrimSpace(trimmed[:colon])
				if profile != "" && !strings.HasPrefix(profile, "Part of") {
					current.availableProfiles = append(current.availableProfiles, profile)
				}
			}
		case inSinks:
			if strings.Contains(trimmed, "bluez") || strings.HasPrefix(trimmed, "#") {
				current.sinks = append(current.sinks, trimmed)
			}
		}
	}
	flush()
	return cards
}
