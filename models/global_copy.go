package models

// GlobalCopyID is the fixed identifier of the singleton row. Content authoring
// writes it out of band; the application only ever reads it.
const GlobalCopyID = "00000000-0000-0000-0000-000000000001"

type DestinationPlace struct {
	Name    string `json:"name"`
	LogoURL string `json:"logoUrl"`
}

type KeyLocation struct {
	Name     string `json:"name"`
	Distance string `json:"distance"`
	Time     string `json:"time"`
}

type Residence struct {
	ImageURL    string `json:"imageUrl"`
	Type        string `json:"type"`
	Size        string `json:"size"`
	Description string `json:"description"`
}

type AmenityItem struct {
	IconName    string `json:"icon_name"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type GlobalCopy struct {
	ID                             string             `gorm:"primaryKey;size:36" json:"id"`
	HeroHeadline                   string             `gorm:"column:hero_headline" json:"hero_headline"`
	HeroSubheadline                string             `gorm:"column:hero_subheadline" json:"hero_subheadline"`
	HeroCTALabel                   string             `gorm:"column:hero_cta_label" json:"hero_cta_label"`
	HeroMediaURL                   string             `gorm:"column:hero_media_url" json:"hero_media_url"`
	IntroTitle                     string             `gorm:"column:intro_title" json:"intro_title"`
	IntroRichText                  string             `gorm:"column:intro_rich_text;type:text" json:"intro_rich_text"`
	IntroButtonLabel               string             `gorm:"column:intro_button_label" json:"intro_button_label"`
	IntroImages                    []string           `gorm:"column:intro_images;serializer:json" json:"intro_images"`
	DestinationTitle               string             `gorm:"column:destination_title" json:"destination_title"`
	DestinationParagraph           string             `gorm:"column:destination_paragraph;type:text" json:"destination_paragraph"`
	DestinationPlaces              []DestinationPlace `gorm:"column:destination_places;serializer:json" json:"destination_places"`
	KeyLocations                   []KeyLocation      `gorm:"column:key_locations;serializer:json" json:"key_locations"`
	DestinationBackgroundImageURL  string             `gorm:"column:destination_background_image_url" json:"destination_background_image_url"`
	ResidencesTitle                string             `gorm:"column:residences_title" json:"residences_title"`
	ResidencesParagraph            string             `gorm:"column:residences_paragraph;type:text" json:"residences_paragraph"`
	ResidenceList                  []Residence        `gorm:"column:residence_list;serializer:json" json:"residence_list"`
	ExperienceTitle                string             `gorm:"column:experience_title" json:"experience_title"`
	ExperienceParagraph            string             `gorm:"column:experience_paragraph;type:text" json:"experience_paragraph"`
	AmenityList                    []AmenityItem      `gorm:"column:amenity_list;serializer:json" json:"amenity_list"`
	PrivacyURL                     string             `gorm:"column:privacy_url" json:"privacy_url"`
	TermsURL                       string             `gorm:"column:terms_url" json:"terms_url"`
	CookiesURL                     string             `gorm:"column:cookies_url" json:"cookies_url"`
	GTMContainerID                 string             `gorm:"column:gtm_container_id" json:"gtm_container_id"`
	WhatsappNumber                 *string            `gorm:"column:whatsapp_number" json:"whatsapp_number"`
	BrochureURL                    *string            `gorm:"column:brochure_url" json:"brochure_url"`
}

// TableName to override the default table name
func (GlobalCopy) TableName() string {
	return "global_copy"
}
