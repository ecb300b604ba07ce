package cli

import (
	"context"
	"fmt"

	"blogctl/internal/client/api"
	"blogctl/internal/client/models"
	"blogctl/internal/client/routes"
)

// gate applies the route guard to a command, the CLI's version of rendering
// a redirect instead of the protected view.
func (a *App) gate(path string) bool {
	r, _, ok := routes.Match(path)
	if !ok {
		return false
	}
	switch a.guard.Decide(r) {
	case routes.Allow:
		return true
	case routes.Wait:
		fmt.Fprintln(a.out, "Checking your session, try again in a moment...")
		return false
	default:
		fmt.Fprintln(a.out, "Please log in first (see 'login').")
		return false
	}
}

func authorName(p *models.Post) string {
	if p.Author.User != nil && p.Author.User.Name != "" {
		return p.Author.User.Name
	}
	return p.Author.ID
}

// List fetches the feed and renders it, newest last (server order).
func (a *App) List(ctx context.Context) error {
	if !a.gate("/") {
		return nil
	}

	if err := a.postService.List(ctx); err != nil {
		fmt.Fprintln(a.out, a.store.Posts().Err)
		return err
	}

	posts := a.store.Posts().Posts
	if len(posts) == 0 {
		fmt.Fprintln(a.out, "No posts yet.")
		return nil
	}
	for i := range posts {
		p := &posts[i]
		fmt.Fprintf(a.out, "[%s] %s — %s\n", p.ID, p.Title, authorName(p))
	}
	return nil
}

// Create composes and submits a new post.
func (a *App) Create(ctx context.Context) error {
	if !a.gate("/create") {
		return nil
	}

	title, err := GetSimpleText(a.reader, "Enter post title", a.out)
	if err != nil {
		return err
	}
	image, err := GetSimpleText(a.reader, "Enter image URL (optional)", a.out)
	if err != nil {
		return err
	}
	content, err := GetMultiline(a.reader, "Write your post content", a.out)
	if err != nil {
		return err
	}

	p, err := a.postService.Create(ctx, api.PostParams{Title: title, Content: content, Image: image})
	if err != nil {
		a.reportError(err)
		return err
	}

	fmt.Fprintf(a.out, "Post created: [%s] %s\n", p.ID, p.Title)
	return nil
}

// findPostForEdit resolves the target post and enforces the client-side
// ownership check. The server still enforces ownership independently.
func (a *App) findPostForEdit(ctx context.Context, id string) (*models.Post, error) {
	if id == "" {
		var err error
		id, err = GetSimpleText(a.reader, "Enter post id", a.out)
		if err != nil {
			return nil, err
		}
	}

	if len(a.store.Posts().Posts) == 0 {
		if err := a.postService.List(ctx); err != nil {
			return nil, err
		}
	}

	p, ok := a.store.FindPost(id)
	if !ok {
		fmt.Fprintln(a.out, "Post not found.")
		return nil, nil
	}
	if !p.OwnedBy(a.store.Auth().User) {
		fmt.Fprintln(a.out, "You can only modify your own posts.")
		return nil, nil
	}
	return p, nil
}

// Edit updates one of the current user's posts. Empty input keeps the
// current field value.
func (a *App) Edit(ctx context.Context, id string) error {
	path := "/"
	if id != "" {
		path = "/edit/" + id
	}
	if !a.gate(path) {
		return nil
	}

	p, err := a.findPostForEdit(ctx, id)
	if err != nil || p == nil {
		return err
	}

	title, err := GetTextWithDefault(a.reader, "Title", p.Title, a.out)
	if err != nil {
		return err
	}
	image, err := GetTextWithDefault(a.reader, "Image URL", p.Image, a.out)
	if err != nil {
		return err
	}
	content, err := GetTextWithDefault(a.reader, "Content", p.Content, a.out)
	if err != nil {
		return err
	}

	updated, err := a.postService.Update(ctx, p.ID, api.PostParams{Title: title, Content: content, Image: image})
	if err != nil {
		a.reportError(err)
		return err
	}

	fmt.Fprintf(a.out, "Post updated: [%s] %s\n", updated.ID, updated.Title)
	return nil
}

// Delete removes one of the current user's posts.
func (a *App) Delete(ctx context.Context, id string) error {
	if !a.gate("/") {
		return nil
	}

	p, err := a.findPostForEdit(ctx, id)
	if err != nil || p == nil {
		return err
	}

	if err := a.postService.Delete(ctx, p.ID); err != nil {
		a.reportError(err)
		return err
	}

	fmt.Fprintln(a.out, "Post deleted.")
	return nil
}
