package http

import "campus-advisor/internal/resource"

type listReq struct {
	Category string `form:"category"`
	Tag      string `form:"tag"`
}

type resourceResp struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Location    string   `json:"location"`
	ContactInfo string   `json:"contact_info"`
	Website     string   `json:"website"`
	Hours       string   `json:"hours"`
	Tags        []string `json:"tags"`
}

type listResp struct {
	Resources []resourceResp `json:"resources"`
	Total     int            `json:"total"`
}

func newListResp(out resource.ListOutput) listResp {
	items := make([]resourceResp, len(out.Resources))
	for i, r := range out.Resources {
		tags := r.Tags
		if tags == nil {
			tags = []string{}
		}
		items[i] = resourceResp{
			ID:          r.ID,
			Name:        r.Name,
			Category:    r.Category,
			Description: r.Description,
			Location:    r.Location,
			ContactInfo: r.ContactInfo,
			Website:     r.Website,
			Hours:       r.Hours,
			Tags:        tags,
		}
	}
	return listResp{Resources: items, Total: len(items)}
}
