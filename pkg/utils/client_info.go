package utils

import (
	"context"
	"fmt"

	"github.com/avct/uasurfer"
)

type clientInfoKey struct{}

// ClientInfo describes the caller of a request, carried in the context down
// to the audit log.
type ClientInfo struct {
	IP        string
	UserAgent string
}

func WithClientInfo(ctx context.Context, info ClientInfo) context.Context {
	return context.WithValue(ctx, clientInfoKey{}, info)
}

func ClientInfoFromContext(ctx context.Context) (ClientInfo, bool) {
	info, ok := ctx.Value(clientInfoKey{}).(ClientInfo)
	return info, ok
}

// DeviceFamily summarizes a user agent as "<device>/<os>/<browser>".
// Returns an empty string when the device type is not recognized.
func DeviceFamily(uaString string) string {
	if uaString == "" {
		return ""
	}
	ua := uasurfer.Parse(uaString)

	var device string
	switch ua.DeviceType {
	case uasurfer.DeviceComputer:
		device = "computer"
	case uasurfer.DeviceTablet:
		device = "tablet"
	case uasurfer.DevicePhone:
		device = "phone"
	case uasurfer.DeviceConsole:
		device = "console"
	case uasurfer.DeviceWearable:
		device = "wearable"
	case uasurfer.DeviceTV:
		device = "tv"
	default:
		return ""
	}

	return fmt.Sprintf("%s/%s %d/%s %d",
		device,
		ua.OS.Name.StringTrimPrefix(), ua.OS.Version.Major,
		ua.Browser.Name.StringTrimPrefix(), ua.Browser.Version.Major,
	)
}
