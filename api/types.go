package api

// Wire types for the zone layout API. Field names follow the server's
// JSON contract.

type Furniture struct {
	ID        int64   `json:"id"`
	TypeKey   string  `json:"furniture_type"`
	Number    int     `json:"number"`
	Capacity  int     `json:"capacity"`
	PositionX float64 `json:"position_x"`
	PositionY float64 `json:"position_y"`
	Rotation  float64 `json:"rotation"`
	Width     float64 `json:"width"`
	Height    float64 `json:"height"`
	FillColor string  `json:"fill_color,omitempty"`
}

type FurnitureTypeInfo struct {
	Key             string  `json:"key"`
	Label           string  `json:"label"`
	Category        string  `json:"category"`
	DefaultColor    string  `json:"default_color"`
	DefaultWidth    float64 `json:"default_width"`
	DefaultHeight   float64 `json:"default_height"`
	DefaultCapacity int     `json:"default_capacity"`
}

type Zone struct {
	Furniture       []Furniture `json:"furniture"`
	CanvasWidth     float64     `json:"canvas_width"`
	CanvasHeight    float64     `json:"canvas_height"`
	BackgroundColor string      `json:"background_color"`
}

type ZoneResponse struct {
	Success        bool                `json:"success"`
	Zone           Zone                `json:"zone"`
	FurnitureTypes []FurnitureTypeInfo `json:"furniture_types"`
	Error          string              `json:"error,omitempty"`
}

type CreateFurnitureRequest struct {
	ZoneID        int64   `json:"zone_id"`
	FurnitureType string  `json:"furniture_type"`
	Number        int     `json:"number"`
	Capacity      int     `json:"capacity"`
	PositionX     float64 `json:"position_x"`
	PositionY     float64 `json:"position_y"`
	Rotation      float64 `json:"rotation"`
	Width         float64 `json:"width"`
	Height        float64 `json:"height"`
}

type PositionUpdate struct {
	ID       int64   `json:"id"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Rotation float64 `json:"rotation"`
}

type statusResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

type createResponse struct {
	Success     bool   `json:"success"`
	FurnitureID int64  `json:"furniture_id"`
	Error       string `json:"error,omitempty"`
}

type nextNumberResponse struct {
	Success    bool   `json:"success"`
	NextNumber int    `json:"next_number"`
	Error      string `json:"error,omitempty"`
}
