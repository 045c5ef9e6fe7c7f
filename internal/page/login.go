package page

import (
	"html/template"
	"log/slog"
	"net/http"

	"github.com/clipnote/clipnote/internal/httputil"
)

const authCSS = `
        * { margin: 0; padding: 0; box-sizing: border-box; }
        body {
            background: #0a1628;
            color: #ffffff;
            font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
            min-height: 100vh;
            display: flex;
            align-items: center;
            justify-content: center;
        }
        .auth-card {
            width: 100%;
            max-width: 380px;
            background: #0f172a;
            border: 1px solid #1e293b;
            border-radius: 8px;
            padding: 2rem;
        }
        .auth-card h1 {
            font-size: 1.25rem;
            margin-bottom: 1.5rem;
            text-align: center;
        }
        .auth-card label {
            display: block;
            font-size: 0.8rem;
            color: #94a3b8;
            margin-bottom: 0.3rem;
        }
        .auth-card input {
            width: 100%;
            background: #1e293b;
            border: 1px solid #334155;
            border-radius: 6px;
            color: #e2e8f0;
            font-size: 0.9rem;
            padding: 0.55rem;
            margin-bottom: 1rem;
        }
        .auth-card input:focus { outline: 2px solid #00b67a; }
        .auth-card button {
            width: 100%;
            background: #00b67a;
            color: #04221a;
            border: none;
            border-radius: 6px;
            padding: 0.6rem;
            font-size: 0.9rem;
            font-weight: 700;
            cursor: pointer;
        }
        .auth-card button:disabled { opacity: 0.5; cursor: default; }
        .auth-error {
            color: #f87171;
            font-size: 0.8rem;
            margin-bottom: 1rem;
            display: none;
        }
        .auth-error.visible { display: block; }
        .auth-switch {
            margin-top: 1.25rem;
            text-align: center;
            font-size: 0.8rem;
            color: #94a3b8;
        }
        .auth-switch a { color: #00b67a; text-decoration: none; }
        .auth-switch a:hover { text-decoration: underline; }
`

const authJS = `
        function submitAuth(path, payload, errEl, btn) {
            btn.disabled = true;
            errEl.classList.remove('visible');
            fetch(path, {
                method: 'POST',
                headers: { 'Content-Type': 'application/json' },
                body: JSON.stringify(payload)
            }).then(function (res) {
                return res.json().then(function (body) {
                    if (!res.ok) throw new Error(body.error || 'request failed');
                    localStorage.setItem('access_token', body.accessToken);
                    window.location.href = '/';
                });
            }).catch(function (err) {
                btn.disabled = false;
                errEl.textContent = err.message;
                errEl.classList.add('visible');
            });
        }
`

var loginPageTemplate = template.Must(template.New("login").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1">
    <title>Sign in — ClipNote</title>
    <style nonce="{{.Nonce}}">` + authCSS + `</style>
</head>
<body>
    <div class="auth-card">
        <h1>Sign in to ClipNote</h1>
        <p class="auth-error" id="error-msg"></p>
        <form id="auth-form">
            <label for="email">Email</label>
            <input type="email" id="email" required autofocus>
            <label for="password">Password</label>
            <input type="password" id="password" required>
            <button type="submit" id="submit-btn">Sign in</button>
        </form>
        <p class="auth-switch">New here? <a href="/register">Create an account</a></p>
    </div>
    <script nonce="{{.Nonce}}">` + authJS + `
        document.getElementById('auth-form').addEventListener('submit', function (e) {
            e.preventDefault();
            submitAuth('/api/auth/login', {
                email: document.getElementById('email').value,
                password: document.getElementById('password').value
            }, document.getElementById('error-msg'), document.getElementById('submit-btn'));
        });
    </script>
</body>
</html>`))

var registerPageTemplate = template.Must(template.New("register").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1">
    <title>Create account — ClipNote</title>
    <style nonce="{{.Nonce}}">` + authCSS + `</style>
</head>
<body>
    <div class="auth-card">
        <h1>Create your ClipNote account</h1>
        <p class="auth-error" id="error-msg"></p>
        <form id="auth-form">
            <label for="name">Name</label>
            <input type="text" id="name" required autofocus maxlength="200">
            <label for="email">Email</label>
            <input type="email" id="email" required>
            <label for="password">Password</label>
            <input type="password" id="password" required minlength="8" maxlength="72">
            <button type="submit" id="submit-btn">Create account</button>
        </form>
        <p class="auth-switch">Already have an account? <a href="/login">Sign in</a></p>
    </div>
    <script nonce="{{.Nonce}}">` + authJS + `
        document.getElementById('auth-form').addEventListener('submit', function (e) {
            e.preventDefault();
            submitAuth('/api/auth/register', {
                name: document.getElementById('name').value,
                email: document.getElementById('email').value,
                password: document.getElementById('password').value
            }, document.getElementById('error-msg'), document.getElementById('submit-btn'));
        });
    </script>
</body>
</html>`))

type authPageData struct {
	Nonce string
}

func (h *Handler) LoginPage(w http.ResponseWriter, r *http.Request) {
	renderAuthPage(w, r, loginPageTemplate, "login")
}

func (h *Handler) RegisterPage(w http.ResponseWriter, r *http.Request) {
	renderAuthPage(w, r, registerPageTemplate, "register")
}

func renderAuthPage(w http.ResponseWriter, r *http.Request, tmpl *template.Template, name string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.Execute(w, authPageData{Nonce: httputil.NonceFromContext(r.Context())}); err != nil {
		slog.Error("page: failed to render auth page", "page", name, "error", err)
	}
}
