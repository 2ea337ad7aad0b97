package graph

import (
	"github.com/graphql-go/graphql"

	"storefront/api/internal/models"
)

// NewSchema builds the executable schema around a resolver. The schema is
// defined programmatically; there is no SDL file.
func NewSchema(r *Resolver) (graphql.Schema, error) {
	permissionEnum := graphql.NewEnum(graphql.EnumConfig{
		Name: "Permission",
		Values: graphql.EnumValueConfigMap{
			string(models.PermissionUser):             {Value: string(models.PermissionUser)},
			string(models.PermissionAdmin):            {Value: string(models.PermissionAdmin)},
			string(models.PermissionItemCreate):       {Value: string(models.PermissionItemCreate)},
			string(models.PermissionItemUpdate):       {Value: string(models.PermissionItemUpdate)},
			string(models.PermissionItemDelete):       {Value: string(models.PermissionItemDelete)},
			string(models.PermissionPermissionUpdate): {Value: string(models.PermissionPermissionUpdate)},
		},
	})

	itemType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Item",
		Fields: graphql.Fields{
			"id":          &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"userId":      &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"title":       &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"description": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"image":       &graphql.Field{Type: graphql.String},
			"largeImage":  &graphql.Field{Type: graphql.String},
			"price":       &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		},
	})

	cartItemType := graphql.NewObject(graphql.ObjectConfig{
		Name: "CartItem",
		Fields: graphql.Fields{
			"id":       &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"quantity": &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
			"item": &graphql.Field{
				Type:    itemType,
				Resolve: r.cartItemItem,
			},
		},
	})

	userType := graphql.NewObject(graphql.ObjectConfig{
		Name: "User",
		Fields: graphql.Fields{
			"id":    &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"email": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"name":  &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"permissions": &graphql.Field{
				Type: graphql.NewList(permissionEnum),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					user, ok := p.Source.(models.User)
					if !ok {
						return nil, nil
					}
					perms := make([]string, 0, len(user.Permissions))
					for _, perm := range user.Permissions {
						perms = append(perms, string(perm))
					}
					return perms, nil
				},
			},
			"cart": &graphql.Field{
				Type:    graphql.NewList(cartItemType),
				Resolve: r.userCart,
			},
		},
	})

	messageType := graphql.NewObject(graphql.ObjectConfig{
		Name: "SuccessMessage",
		Fields: graphql.Fields{
			"message": &graphql.Field{Type: graphql.String},
		},
	})

	uploadTargetType := graphql.NewObject(graphql.ObjectConfig{
		Name: "UploadTarget",
		Fields: graphql.Fields{
			"uploadUrl": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"publicUrl": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		},
	})

	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"me": &graphql.Field{
				Type:    userType,
				Resolve: r.me,
			},
			"item": &graphql.Field{
				Type: itemType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: r.item,
			},
			"items": &graphql.Field{
				Type: graphql.NewList(itemType),
				Args: graphql.FieldConfigArgument{
					"first": &graphql.ArgumentConfig{Type: graphql.Int},
					"skip":  &graphql.ArgumentConfig{Type: graphql.Int},
				},
				Resolve: r.itemList,
			},
			"users": &graphql.Field{
				Type:    graphql.NewList(userType),
				Resolve: r.users,
			},
		},
	})

	mutationType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"signup": &graphql.Field{
				Type: userType,
				Args: graphql.FieldConfigArgument{
					"email":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"password": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"name":     &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: r.signup,
			},
			"signin": &graphql.Field{
				Type: userType,
				Args: graphql.FieldConfigArgument{
					"email":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"password": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: r.signin,
			},
			"signout": &graphql.Field{
				Type:    messageType,
				Resolve: r.signout,
			},
			"requestReset": &graphql.Field{
				Type: messageType,
				Args: graphql.FieldConfigArgument{
					"email": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: r.requestReset,
			},
			"resetPassword": &graphql.Field{
				Type: userType,
				Args: graphql.FieldConfigArgument{
					"resetToken":      &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"password":        &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"confirmPassword": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: r.resetPassword,
			},
			"updatePermissions": &graphql.Field{
				Type: userType,
				Args: graphql.FieldConfigArgument{
					"userId":      &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"permissions": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.NewList(permissionEnum))},
				},
				Resolve: r.updatePermissions,
			},
			"createItem": &graphql.Field{
				Type: itemType,
				Args: graphql.FieldConfigArgument{
					"title":       &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"description": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"price":       &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
					"image":       &graphql.ArgumentConfig{Type: graphql.String},
					"largeImage":  &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: r.createItem,
			},
			"updateItem": &graphql.Field{
				Type: itemType,
				Args: graphql.FieldConfigArgument{
					"id":          &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"title":       &graphql.ArgumentConfig{Type: graphql.String},
					"description": &graphql.ArgumentConfig{Type: graphql.String},
					"price":       &graphql.ArgumentConfig{Type: graphql.Int},
				},
				Resolve: r.updateItem,
			},
			"deleteItem": &graphql.Field{
				Type: itemType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: r.deleteItem,
			},
			"addToCart": &graphql.Field{
				Type: cartItemType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: r.addToCart,
			},
			"removeFromCart": &graphql.Field{
				Type: cartItemType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: r.removeFromCart,
			},
			"requestImageUpload": &graphql.Field{
				Type: uploadTargetType,
				Args: graphql.FieldConfigArgument{
					"filename": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: r.requestImageUpload,
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    queryType,
		Mutation: mutationType,
	})
}
