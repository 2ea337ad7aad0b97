package graph

import (
	"context"
	"fmt"
	"path"

	"github.com/graphql-go/graphql"
	"github.com/rs/zerolog"

	"storefront/api/internal/ids"
	"storefront/api/internal/models"
	"storefront/api/internal/service"
)

// ImageStore issues presigned upload URLs for item images. Nil disables the
// requestImageUpload mutation.
type ImageStore interface {
	PresignItemUpload(ctx context.Context, objectKey string) (uploadURL string, publicURL string, err error)
}

// Resolver backs every schema field. The GraphQL engine dispatches to it by
// field name; all state lives in the services it wraps.
type Resolver struct {
	auth   *service.AuthService
	items  *service.ItemService
	carts  *service.CartService
	images ImageStore
	log    zerolog.Logger
}

func NewResolver(auth *service.AuthService, items *service.ItemService, carts *service.CartService, images ImageStore, log zerolog.Logger) *Resolver {
	return &Resolver{
		auth:   auth,
		items:  items,
		carts:  carts,
		images: images,
		log:    log,
	}
}

func stringArg(p graphql.ResolveParams, name string) string {
	s, _ := p.Args[name].(string)
	return s
}

func optStringArg(p graphql.ResolveParams, name string) *string {
	if s, ok := p.Args[name].(string); ok {
		return &s
	}
	return nil
}

func intArg(p graphql.ResolveParams, name string) int {
	n, _ := p.Args[name].(int)
	return n
}

func optInt64Arg(p graphql.ResolveParams, name string) *int64 {
	if n, ok := p.Args[name].(int); ok {
		v := int64(n)
		return &v
	}
	return nil
}

func setSessionCookie(ctx context.Context, token string) {
	if cw := CookiesFrom(ctx); cw != nil {
		cw.SetToken(token)
	}
}

type message struct {
	Message string `json:"message"`
}

func (r *Resolver) signup(p graphql.ResolveParams) (interface{}, error) {
	result, err := r.auth.Signup(p.Context, service.SignupInput{
		Email:    stringArg(p, "email"),
		Password: stringArg(p, "password"),
		Name:     stringArg(p, "name"),
	})
	if err != nil {
		return nil, err
	}
	setSessionCookie(p.Context, result.Token)
	return result.User, nil
}

func (r *Resolver) signin(p graphql.ResolveParams) (interface{}, error) {
	result, err := r.auth.Signin(p.Context, service.SigninInput{
		Email:    stringArg(p, "email"),
		Password: stringArg(p, "password"),
	})
	if err != nil {
		return nil, err
	}
	setSessionCookie(p.Context, result.Token)
	return result.User, nil
}

func (r *Resolver) signout(p graphql.ResolveParams) (interface{}, error) {
	if cw := CookiesFrom(p.Context); cw != nil {
		cw.ClearToken()
	}
	return message{Message: "Goodbye!"}, nil
}

func (r *Resolver) requestReset(p graphql.ResolveParams) (interface{}, error) {
	if err := r.auth.RequestReset(p.Context, stringArg(p, "email")); err != nil {
		return nil, err
	}
	return message{Message: "Thanks! Check your email for a reset link."}, nil
}

func (r *Resolver) resetPassword(p graphql.ResolveParams) (interface{}, error) {
	result, err := r.auth.ResetPassword(p.Context, service.ResetPasswordInput{
		ResetToken:      stringArg(p, "resetToken"),
		Password:        stringArg(p, "password"),
		ConfirmPassword: stringArg(p, "confirmPassword"),
	})
	if err != nil {
		return nil, err
	}
	setSessionCookie(p.Context, result.Token)
	return result.User, nil
}

func (r *Resolver) updatePermissions(p graphql.ResolveParams) (interface{}, error) {
	raw, _ := p.Args["permissions"].([]interface{})
	perms := make([]models.Permission, 0, len(raw))
	for _, v := range raw {
		s, _ := v.(string)
		perms = append(perms, models.Permission(s))
	}

	return r.auth.UpdatePermissions(p.Context, ViewerFrom(p.Context), stringArg(p, "userId"), perms)
}

func (r *Resolver) createItem(p graphql.ResolveParams) (interface{}, error) {
	return r.items.Create(p.Context, ViewerFrom(p.Context), service.CreateItemInput{
		Title:       stringArg(p, "title"),
		Description: stringArg(p, "description"),
		Image:       stringArg(p, "image"),
		LargeImage:  stringArg(p, "largeImage"),
		Price:       int64(intArg(p, "price")),
	})
}

func (r *Resolver) updateItem(p graphql.ResolveParams) (interface{}, error) {
	return r.items.Update(p.Context, ViewerFrom(p.Context), stringArg(p, "id"), service.UpdateItemInput{
		Title:       optStringArg(p, "title"),
		Description: optStringArg(p, "description"),
		Price:       optInt64Arg(p, "price"),
	})
}

func (r *Resolver) deleteItem(p graphql.ResolveParams) (interface{}, error) {
	return r.items.Delete(p.Context, ViewerFrom(p.Context), stringArg(p, "id"))
}

func (r *Resolver) addToCart(p graphql.ResolveParams) (interface{}, error) {
	return r.carts.AddToCart(p.Context, ViewerFrom(p.Context), stringArg(p, "id"))
}

func (r *Resolver) removeFromCart(p graphql.ResolveParams) (interface{}, error) {
	return r.carts.RemoveFromCart(p.Context, ViewerFrom(p.Context), stringArg(p, "id"))
}

type uploadTarget struct {
	UploadURL string `json:"uploadUrl"`
	PublicURL string `json:"publicUrl"`
}

func (r *Resolver) requestImageUpload(p graphql.ResolveParams) (interface{}, error) {
	viewer := ViewerFrom(p.Context)
	if viewer == nil {
		return nil, service.ErrNotAuthenticated
	}
	if r.images == nil {
		return nil, fmt.Errorf("image uploads are not configured")
	}

	filename := path.Base(stringArg(p, "filename"))
	if filename == "" || filename == "." || filename == "/" {
		return nil, service.ErrMissingFields
	}

	key := fmt.Sprintf("%s/%s-%s", viewer.ID, ids.New(), filename)
	uploadURL, publicURL, err := r.images.PresignItemUpload(p.Context, key)
	if err != nil {
		return nil, err
	}

	return uploadTarget{UploadURL: uploadURL, PublicURL: publicURL}, nil
}

func (r *Resolver) me(p graphql.ResolveParams) (interface{}, error) {
	viewer := ViewerFrom(p.Context)
	if viewer == nil {
		return nil, nil
	}
	return *viewer, nil
}

func (r *Resolver) item(p graphql.ResolveParams) (interface{}, error) {
	return r.items.Get(p.Context, stringArg(p, "id"))
}

func (r *Resolver) itemList(p graphql.ResolveParams) (interface{}, error) {
	return r.items.List(p.Context, intArg(p, "first"), intArg(p, "skip"))
}

func (r *Resolver) users(p graphql.ResolveParams) (interface{}, error) {
	return r.auth.ListUsers(p.Context, ViewerFrom(p.Context))
}

func (r *Resolver) userCart(p graphql.ResolveParams) (interface{}, error) {
	user, ok := p.Source.(models.User)
	if !ok {
		return nil, nil
	}
	return r.carts.ItemsForUser(p.Context, user.ID)
}

func (r *Resolver) cartItemItem(p graphql.ResolveParams) (interface{}, error) {
	line, ok := p.Source.(models.CartItem)
	if !ok {
		return nil, nil
	}
	return r.items.Get(p.Context, line.ItemID)
}
