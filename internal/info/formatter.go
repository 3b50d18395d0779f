package info

import (
	"fmt"
	"strings"
)

// Platforms a description can be rendered for
const (
	PlatformDiscord = "discord"
	PlatformAPI     = "api"
)

// Formatter provides platform-specific formatting for info content
type Formatter struct{}

// NewFormatter creates a new formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

// IsValidPlatform reports whether platform is one the formatter knows.
func IsValidPlatform(platform string) bool {
	switch strings.ToLower(platform) {
	case PlatformDiscord, PlatformAPI:
		return true
	}
	return false
}

// FormatFeature formats a feature for the specified platform
func (f *Formatter) FormatFeature(feature *Feature, platform string) string {
	if strings.ToLower(platform) == PlatformAPI {
		return strings.TrimSpace(feature.API.Description)
	}

	var b strings.Builder
	if feature.Title != "" {
		fmt.Fprintf(&b, "**%s %s**\n", feature.Icon, feature.Title)
	}
	b.WriteString(strings.TrimSpace(feature.Discord.Description))
	if len(feature.Topics) > 0 {
		fmt.Fprintf(&b, "\n\nTopics: %s", strings.Join(sortedKeys(feature.Topics), ", "))
	}
	return strings.TrimSpace(b.String())
}

// FormatTopic formats a topic for the specified platform
func (f *Formatter) FormatTopic(topic *Topic, platform string) string {
	if strings.ToLower(platform) == PlatformAPI {
		return strings.TrimSpace(topic.API.Description)
	}

	desc := strings.TrimSpace(topic.Discord.Description)
	if topic.Command != "" {
		return fmt.Sprintf("`%s`\n%s", topic.Command, desc)
	}
	return desc
}

// FormatFeatureList formats a list of available features for the platform
func (f *Formatter) FormatFeatureList(features map[string]*Feature, platform string) string {
	names := sortedKeys(features)

	if strings.ToLower(platform) == PlatformAPI {
		return fmt.Sprintf("Available topics: %s", strings.Join(names, ", "))
	}
	return fmt.Sprintf("**Arc Looterputer help**\nAvailable: %s", strings.Join(names, ", "))
}
