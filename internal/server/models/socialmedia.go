package models

import "time"

// Platform names a supported social network.
type Platform string

const (
	PlatformFacebook  Platform = "facebook"
	PlatformTwitter   Platform = "twitter"
	PlatformInstagram Platform = "instagram"
	PlatformLinkedIn  Platform = "linkedin"
	PlatformGitHub    Platform = "github"
	PlatformYouTube   Platform = "youtube"
	PlatformTikTok    Platform = "tiktok"
)

// Platforms lists every accepted Platform.
var Platforms = []Platform{
	PlatformFacebook,
	PlatformTwitter,
	PlatformInstagram,
	PlatformLinkedIn,
	PlatformGitHub,
	PlatformYouTube,
	PlatformTikTok,
}

// Valid reports whether p is one of Platforms.
func (p Platform) Valid() bool {
	for _, known := range Platforms {
		if p == known {
			return true
		}
	}
	return false
}

// SocialMedia is a footer link to one of the agency's profiles.
type SocialMedia struct {
	ID        string    `json:"_id"`
	Platform  Platform  `json:"platform"`
	URL       string    `json:"url"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
