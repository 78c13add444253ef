package store

import "github.com/Harshitk-cp/tenantdesk/internal/domain"

func seedTenants() []domain.Tenant {
	return []domain.Tenant{
		{
			ID:     "acme-corp",
			Name:   "Acme Corporation",
			Domain: "acme-corp",
			Settings: domain.TenantSettings{
				PrimaryColor: "#3B82F6",
				Timezone:     "UTC",
			},
		},
		{
			ID:     "tech-solutions",
			Name:   "Tech Solutions Inc",
			Domain: "tech-solutions",
			Settings: domain.TenantSettings{
				PrimaryColor: "#10B981",
				Timezone:     "UTC",
			},
		},
	}
}

func seedUsers() []domain.User {
	return []domain.User{
		{
			ID:          "1",
			Name:        "Rolake Admin",
			Email:       "admin@acme-corp.com",
			Role:        domain.RoleAdmin,
			TenantID:    "acme-corp",
			Permissions: domain.DefaultPermissions(domain.RoleAdmin),
		},
		{
			ID:          "2",
			Name:        "Jane Manager",
			Email:       "manager@acme-corp.com",
			Role:        domain.RoleManager,
			TenantID:    "acme-corp",
			Permissions: domain.DefaultPermissions(domain.RoleManager),
			Department:  "Sales",
		},
		{
			ID:          "3",
			Name:        "Bob Viewer",
			Email:       "viewer@acme-corp.com",
			Role:        domain.RoleViewer,
			TenantID:    "acme-corp",
			Permissions: domain.DefaultPermissions(domain.RoleViewer),
		},
	}
}

func seedIdentities() []domain.Identity {
	ident := func(id, email, name string, role domain.Role, tenantID string) domain.Identity {
		return domain.Identity{
			ID:          id,
			Email:       email,
			Name:        name,
			Role:        role,
			TenantID:    tenantID,
			Permissions: domain.DefaultPermissions(role),
		}
	}
	return []domain.Identity{
		ident("1", "admin@acmecorp.com", "Admin User", domain.RoleAdmin, "acme-corp"),
		ident("2", "manager@acmecorp.com", "Manager User", domain.RoleManager, "acme-corp"),
		ident("3", "viewer@acmecorp.com", "Viewer User", domain.RoleViewer, "acme-corp"),
		ident("4", "admin@techstart.com", "Tech Admin", domain.RoleAdmin, "tech-solutions"),
		ident("5", "manager@techstart.com", "Tech Manager", domain.RoleManager, "tech-solutions"),
		ident("6", "viewer@globalsol.com", "Global Viewer", domain.RoleViewer, "tech-solutions"),
	}
}
