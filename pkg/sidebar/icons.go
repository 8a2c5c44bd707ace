package sidebar

// Icon is the identifier of a renderable icon in the application's icon set.
// The menu renderer maps these onto actual glyphs.
type Icon string

const (
	IconGauge             Icon = "gauge"
	IconEnvelope          Icon = "envelope"
	IconPaperPlaneTilt    Icon = "paper-plane-tilt"
	IconArchive           Icon = "archive"
	IconTruck             Icon = "truck"
	IconInvoice           Icon = "invoice"
	IconCalendarDots      Icon = "calendar-dots"
	IconUsersThree        Icon = "users-three"
	IconShieldCheck       Icon = "shield-check"
	IconGear              Icon = "gear"
	IconAirTrafficControl Icon = "air-traffic-control"
	IconFile              Icon = "file"
)

var iconsByName = map[string]Icon{
	"gauge":               IconGauge,
	"envelope":            IconEnvelope,
	"paper-plane-tilt":    IconPaperPlaneTilt,
	"archive":             IconArchive,
	"truck":               IconTruck,
	"invoice":             IconInvoice,
	"calendar-dots":       IconCalendarDots,
	"users-three":         IconUsersThree,
	"shield-check":        IconShieldCheck,
	"gear":                IconGear,
	"air-traffic-control": IconAirTrafficControl,
	"file":                IconFile,
}

// DefaultIcon is returned for unknown or empty symbolic names.
const DefaultIcon = IconFile

// ResolveIcon maps a symbolic icon name to a renderable icon identifier. It
// is total: unknown names resolve to DefaultIcon.
func ResolveIcon(name string) Icon {
	if icon, ok := iconsByName[name]; ok {
		return icon
	}
	return DefaultIcon
}
