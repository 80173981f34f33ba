package apiclient

// Mirror records of the API's entities. Images are referenced by
// filename only; the full URL is {image base}/{resource}/{filename}.

type Menu struct {
	ID       uint   `json:"id"`
	MenuName string `json:"menu_name"`
	Image    string `json:"image"`
	Details  string `json:"details"`
	Price    int64  `json:"price"`
	Category string `json:"category"`
	Status   string `json:"status"`
}

type Promo struct {
	ID        uint   `json:"id"`
	PromoName string `json:"promo_name"`
	Image     string `json:"image"`
	Status    string `json:"status"`
}

type Outlet struct {
	ID       uint   `json:"id"`
	Location string `json:"location"`
	Link     string `json:"link"`
	IsActive bool   `json:"is_active"`
}

type Career struct {
	ID          uint   `json:"id"`
	Image       string `json:"image"`
	Description string `json:"description"`
}

type Gallery struct {
	ID          uint   `json:"id"`
	Category    string `json:"category"`
	Image       string `json:"image"`
	Description string `json:"description"`
}

type User struct {
	ID     uint   `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Status string `json:"status"`
}

type Member struct {
	ID                  uint   `json:"id"`
	MemberCode          string `json:"member_code"`
	Name                string `json:"name"`
	Address             string `json:"address"`
	NoWA                string `json:"no_wa"`
	Outlet              string `json:"outlet"`
	OutletID            uint   `json:"outlet_id"`
	Points              int    `json:"points"`
	TotalPointsEarned   int    `json:"total_points_earned"`
	TotalPointsRedeemed int    `json:"total_points_redeemed"`
}

type PointTransaction struct {
	ID           uint   `json:"id"`
	MemberID     uint   `json:"member_id"`
	Type         string `json:"type"`
	Amount       int    `json:"amount"`
	BalanceAfter int    `json:"balance_after"`
	Note         string `json:"note,omitempty"`
}

// Per-resource controllers with their validators pre-wired.

func NewMenus(c *Client) *Resource[Menu] {
	return NewResource[Menu](c, "menu", ValidateMenuForm)
}

func NewPromos(c *Client) *Resource[Promo] {
	return NewResource[Promo](c, "promo", ValidatePromoForm)
}

func NewOutlets(c *Client) *Resource[Outlet] {
	return NewResource[Outlet](c, "outlet", ValidateOutletForm)
}

func NewCareers(c *Client) *Resource[Career] {
	return NewResource[Career](c, "karir", ValidateCareerForm)
}

func NewGalleries(c *Client) *Resource[Gallery] {
	return NewResource[Gallery](c, "galeri", ValidateGalleryForm)
}

func NewUsers(c *Client) *Resource[User] {
	return NewResource[User](c, "user", ValidateUserForm)
}
