package api

import (
	"fmt"
	"html/template"
)

const baseTemplate = `{{define "base"}}<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{.Title}}</title>
</head>
<body>
  <main class="page">
    {{if .FlashError}}<div class="status-error">{{.FlashError}}</div>{{end}}
    {{if .FlashSuccess}}<div class="status-success">{{.FlashSuccess}}</div>{{end}}
    {{template "content" .}}
  </main>
</body>
</html>{{end}}`

const loginTemplate = `{{define "content"}}
<h1>Strive</h1>
<form method="post" action="/api/auth/login">
  <input type="email" name="email" placeholder="Email" value="{{.LoginEmail}}" required>
  <input type="password" name="password" placeholder="Password" required>
  <button type="submit">Log in</button>
</form>
<p><a href="/register">Create an account</a></p>
{{end}}`

const registerTemplate = `{{define "content"}}
<h1>Join Strive</h1>
<form method="post" action="/api/auth/register">
  <input type="email" name="email" placeholder="Email" value="{{.LoginEmail}}" required>
  <input type="password" name="password" placeholder="Password" required>
  <input type="password" name="confirm_password" placeholder="Confirm password" required>
  <select name="role">
    <option value="athlete">Athlete</option>
    <option value="coach">Coach</option>
    <option value="scout">Scout</option>
  </select>
  <button type="submit">Sign up</button>
</form>
<p><a href="/login">Already have an account?</a></p>
{{end}}`

const profileTemplate = `{{define "content"}}
<h1>Complete your profile</h1>
<form method="post" action="/api/profile" enctype="multipart/form-data">
  <input type="text" name="name" placeholder="Full name" value="{{.User.Name}}" required>
  <select name="role">
    <option value="athlete" {{if eq .User.Role "athlete"}}selected{{end}}>Athlete</option>
    <option value="coach" {{if eq .User.Role "coach"}}selected{{end}}>Coach</option>
    <option value="scout" {{if eq .User.Role "scout"}}selected{{end}}>Scout</option>
  </select>
  <input type="text" name="sport" placeholder="Sport" value="{{.User.Sport}}">
  <textarea name="bio" placeholder="Bio">{{.User.Bio}}</textarea>
  <textarea name="achievements" placeholder="Achievements">{{.User.Achievements}}</textarea>
  <label>Proof document <input type="file" name="proof"></label>
  <button type="submit">Save profile</button>
</form>
{{end}}`

const dashboardTemplate = `{{define "content"}}
<header>
  <h1>Welcome{{if .AthleteName}}, {{.AthleteName}}{{end}}</h1>
  {{if .AthleteSport}}<p>{{.AthleteSport}}</p>{{end}}
  <form method="post" action="/api/auth/logout"><button type="submit">Log out</button></form>
</header>
<form method="post" action="/api/posts">
  <textarea name="content" placeholder="Share an update" required></textarea>
  <button type="submit">Post</button>
</form>
<div id="posts">
  {{range .Posts}}
  <div class="post">
    <div class="author">{{.Author}}</div>
    <div class="meta">{{.PostedAt}}</div>
    <div>{{.Content}}</div>
    <div class="icons"><span>&hearts; {{.LikeCount}}</span></div>
  </div>
  {{end}}
</div>
<script>
  const postsDiv = document.getElementById("posts");
  const source = new EventSource("/api/feed/stream");
  source.onmessage = (message) => {
    const posts = JSON.parse(message.data);
    postsDiv.innerHTML = "";
    for (const post of posts) {
      const node = document.createElement("div");
      node.className = "post";
      const author = document.createElement("div");
      author.className = "author";
      author.textContent = post.author;
      const meta = document.createElement("div");
      meta.className = "meta";
      meta.textContent = post.posted_at;
      const content = document.createElement("div");
      content.textContent = post.content;
      const likes = document.createElement("div");
      likes.className = "icons";
      likes.textContent = "♥ " + post.like_count;
      node.append(author, meta, content, likes);
      postsDiv.append(node);
    }
  };
</script>
{{end}}`

func parsePageTemplates() (map[string]*template.Template, error) {
	pages := map[string]string{
		"login":     loginTemplate,
		"register":  registerTemplate,
		"profile":   profileTemplate,
		"dashboard": dashboardTemplate,
	}

	templates := make(map[string]*template.Template, len(pages))
	for name, content := range pages {
		tmpl, err := template.New(name).Parse(baseTemplate)
		if err != nil {
			return nil, fmt.Errorf("parse base template for %s: %w", name, err)
		}
		if _, err := tmpl.Parse(content); err != nil {
			return nil, fmt.Errorf("parse %s template: %w", name, err)
		}
		templates[name] = tmpl
	}
	return templates, nil
}
