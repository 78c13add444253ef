package domain

type Tenant struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Domain   string         `json:"domain"`
	Settings TenantSettings `json:"settings"`
}

type TenantSettings struct {
	PrimaryColor string  `json:"primary_color"`
	Timezone     string  `json:"timezone"`
	Logo         *string `json:"logo,omitempty"`
}

// SettingsPatch is a merge-patch over TenantSettings. Nil fields are left untouched.
type SettingsPatch struct {
	PrimaryColor *string `json:"primary_color,omitempty"`
	Timezone     *string `json:"timezone,omitempty"`
	Logo         *string `json:"logo,omitempty"`
}

func (p SettingsPatch) Empty() bool {
	return p.PrimaryColor == nil && p.Timezone == nil && p.Logo == nil
}

// Merge returns a copy of s with every non-nil field of p applied.
func (s TenantSettings) Merge(p SettingsPatch) TenantSettings {
	out := s
	if p.PrimaryColor != nil {
		out.PrimaryColor = *p.PrimaryColor
	}
	if p.Timezone != nil {
		out.Timezone = *p.Timezone
	}
	if p.Logo != nil {
		logo := *p.Logo
		out.Logo = &logo
	}
	return out
}
