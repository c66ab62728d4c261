package config

// Provider identifies a mail relay preset. Known providers pin the relay
// endpoint and security mode; ProviderCustom uses the configured SMTP block.
type Provider string

const (
	ProviderGmail      Provider = "gmail"
	ProviderOutlook    Provider = "outlook"
	ProviderYahoo      Provider = "yahoo"
	ProviderQQ         Provider = "qq"
	ProviderNetEase163 Provider = "163"
	ProviderCustom     Provider = "custom"
)

var providerPresets = map[Provider]SMTPConfig{
	ProviderGmail:      {Server: "smtp.gmail.com", Port: 587, UseTLS: true},
	ProviderOutlook:    {Server: "smtp-mail.outlook.com", Port: 587, UseTLS: true},
	ProviderYahoo:      {Server: "smtp.mail.yahoo.com", Port: 587, UseTLS: true},
	ProviderQQ:         {Server: "smtp.qq.com", Port: 587, UseTLS: true},
	ProviderNetEase163: {Server: "smtp.163.com", Port: 25, UseTLS: true},
}

// Preset returns the relay endpoint for a known provider. For
// ProviderCustom (or anything unrecognized) the zero SMTPConfig is
// returned and the caller should fall back to the configured block.
func (p Provider) Preset() SMTPConfig {
	return providerPresets[p]
}

// ResolveSMTP returns the effective relay endpoint for the channel:
// the provider preset, or the configured SMTP block for custom setups.
func (c EmailConfig) ResolveSMTP() SMTPConfig {
	if preset, ok := providerPresets[c.Provider]; ok {
		return preset
	}
	return c.SMTP
}
