package page

// appCSS styles the watch page: the player region, the comment list, and the
// new-comment form.
const appCSS = `
        * { margin: 0; padding: 0; box-sizing: border-box; }
        body {
            background: #0a1628;
            color: #ffffff;
            font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
            min-height: 100vh;
        }
        .container {
            max-width: 960px;
            margin: 0 auto;
            padding: 1.5rem 1rem 3rem;
        }
        header {
            display: flex;
            align-items: center;
            justify-content: space-between;
            margin-bottom: 1.5rem;
        }
        .logo { font-size: 1.25rem; font-weight: 700; letter-spacing: 0.02em; }
        .nav { display: flex; align-items: center; gap: 1rem; }
        .nav a, .nav button {
            color: #94a3b8;
            background: none;
            border: none;
            font-size: 0.875rem;
            text-decoration: none;
            cursor: pointer;
        }
        .nav a:hover, .nav button:hover { color: #ffffff; }
        .nav .username { color: #e2e8f0; font-weight: 600; }
        .hidden { display: none !important; }
        .player-region { position: relative; }
        .player-container {
            width: 100%;
            aspect-ratio: 16 / 9;
            background: #000;
            border-radius: 8px;
            overflow: hidden;
        }
        .player-loading {
            position: absolute;
            inset: 0;
            display: flex;
            align-items: center;
            justify-content: center;
            background: #1e293b;
            border-radius: 8px;
            color: #94a3b8;
            font-size: 1rem;
        }
        .notice {
            position: fixed;
            bottom: 1.5rem;
            left: 50%;
            transform: translateX(-50%);
            background: #7f1d1d;
            color: #fecaca;
            padding: 0.6rem 1.2rem;
            border-radius: 6px;
            font-size: 0.875rem;
            z-index: 50;
        }
        .comments-section { margin-top: 2rem; }
        .comments-section h2 {
            font-size: 1rem;
            text-transform: uppercase;
            letter-spacing: 0.06em;
            color: #94a3b8;
            margin-bottom: 1rem;
        }
        .empty-comments {
            color: #64748b;
            font-size: 0.875rem;
            padding: 1.5rem 0;
        }
        .comment-card {
            display: flex;
            gap: 0.75rem;
            padding: 0.9rem 0;
            border-bottom: 1px solid #1e293b;
        }
        .comment-avatar {
            width: 36px;
            height: 36px;
            border-radius: 50%;
            background: #334155;
            flex-shrink: 0;
        }
        .comment-content { flex: 1; min-width: 0; }
        .comment-header {
            display: flex;
            align-items: baseline;
            justify-content: space-between;
        }
        .comment-username { font-weight: 600; font-size: 0.9rem; }
        .comment-delete {
            background: none;
            border: none;
            color: #64748b;
            font-size: 0.75rem;
            cursor: pointer;
        }
        .comment-delete:hover { color: #f87171; }
        .comment-text {
            margin-top: 0.25rem;
            font-size: 0.9rem;
            color: #e2e8f0;
            white-space: pre-wrap;
            overflow-wrap: break-word;
        }
        .comment-timestamp {
            margin-top: 0.4rem;
            background: none;
            border: none;
            color: #00b67a;
            font-family: monospace;
            font-size: 0.8rem;
            cursor: pointer;
            padding: 0;
        }
        .comment-timestamp:hover { text-decoration: underline; }
        .new-comment-section {
            margin-top: 1.5rem;
            background: #0f172a;
            border: 1px solid #1e293b;
            border-radius: 8px;
            padding: 1rem;
        }
        .new-comment-header {
            display: flex;
            align-items: center;
            justify-content: space-between;
            margin-bottom: 0.75rem;
        }
        .new-comment-title {
            font-size: 0.8rem;
            font-weight: 700;
            letter-spacing: 0.06em;
            color: #94a3b8;
        }
        .new-comment-time {
            font-family: monospace;
            font-size: 0.9rem;
            color: #00b67a;
        }
        .comment-input {
            width: 100%;
            min-height: 80px;
            background: #1e293b;
            border: 1px solid #334155;
            border-radius: 6px;
            color: #e2e8f0;
            font-size: 0.9rem;
            padding: 0.6rem;
            resize: vertical;
        }
        .comment-input:focus { outline: 2px solid #00b67a; }
        .submit-button {
            margin-top: 0.75rem;
            background: #00b67a;
            color: #04221a;
            border: none;
            border-radius: 6px;
            padding: 0.5rem 1.25rem;
            font-size: 0.85rem;
            font-weight: 700;
            cursor: pointer;
        }
        .submit-button:disabled { opacity: 0.5; cursor: default; }
        .login-prompt {
            margin-top: 1.5rem;
            text-align: center;
            background: #0f172a;
            border: 1px solid #1e293b;
            border-radius: 8px;
            padding: 1.5rem;
        }
        .login-prompt p { color: #94a3b8; font-size: 0.9rem; margin-bottom: 0.75rem; }
        .login-prompt a {
            display: inline-block;
            background: #00b67a;
            color: #04221a;
            border-radius: 6px;
            padding: 0.5rem 1.5rem;
            font-size: 0.85rem;
            font-weight: 700;
            text-decoration: none;
        }
`

// appJS drives the comment UI. It keeps all page state in one place, never
// mutates the DOM after teardown, and reads the recorded timestamp fresh from
// the player at submit time rather than trusting the displayed label.
//
// fmtTime must stay in lockstep with FormatTimestamp in internal/comment: a
// freshly created comment's server-side timestamp_formatted and the form's
// preview are expected to match exactly.
const appJS = `
        function fmtTime(seconds) {
            var s = Math.floor(seconds);
            var hours = Math.floor(s / 3600);
            var minutes = Math.floor((s % 3600) / 60);
            var secs = s % 60;
            function pad(n) { return (n < 10 ? '0' : '') + n; }
            if (hours > 0) return pad(hours) + ':' + pad(minutes) + ':' + pad(secs);
            return pad(minutes) + ':' + pad(secs);
        }

        function initWatchPage(videoId) {
            var state = { me: null, comments: [], adapter: null, tornDown: false };

            var playerContainer = document.getElementById('player-container');
            var playerLoading = document.getElementById('player-loading');
            var noticeEl = document.getElementById('notice');
            var listEl = document.getElementById('comments-list');
            var formSection = document.getElementById('new-comment-section');
            var loginPrompt = document.getElementById('login-prompt');
            var form = document.getElementById('comment-form');
            var input = document.getElementById('comment-input');
            var timeLabel = document.getElementById('comment-time');
            var navSignedOut = document.getElementById('nav-signed-out');
            var navSignedIn = document.getElementById('nav-signed-in');
            var navUsername = document.getElementById('nav-username');
            var logoutBtn = document.getElementById('logout-btn');

            var noticeTimer = null;
            function notify(message) {
                if (state.tornDown) return;
                noticeEl.textContent = message;
                noticeEl.classList.remove('hidden');
                clearTimeout(noticeTimer);
                noticeTimer = setTimeout(function () {
                    noticeEl.classList.add('hidden');
                }, 4000);
            }

            function authHeaders() {
                var token = localStorage.getItem('access_token');
                return token ? { 'Authorization': 'Bearer ' + token } : {};
            }

            function refreshAccessToken() {
                return fetch('/api/auth/refresh', { method: 'POST' }).then(function (res) {
                    if (!res.ok) throw new Error('refresh failed');
                    return res.json();
                }).then(function (body) {
                    localStorage.setItem('access_token', body.accessToken);
                });
            }

            function loadMe() {
                if (!localStorage.getItem('access_token')) return Promise.resolve(null);
                function me() { return fetch('/api/auth/me', { headers: authHeaders() }); }
                return me().then(function (res) {
                    if (res.ok) return res.json();
                    return refreshAccessToken().then(me).then(function (retried) {
                        if (!retried.ok) throw new Error('not signed in');
                        return retried.json();
                    });
                }).catch(function () {
                    localStorage.removeItem('access_token');
                    return null;
                });
            }

            function seekTo(seconds) {
                state.adapter.seek(seconds).catch(function () {
                    notify('Could not seek the player. Please try again.');
                });
            }

            function buildCard(c) {
                var card = document.createElement('div');
                card.className = 'comment-card';

                var avatar = document.createElement('div');
                avatar.className = 'comment-avatar';
                card.appendChild(avatar);

                var content = document.createElement('div');
                content.className = 'comment-content';

                var header = document.createElement('div');
                header.className = 'comment-header';

                var username = document.createElement('div');
                username.className = 'comment-username';
                username.textContent = c.username;
                header.appendChild(username);

                if (state.me && state.me.id === c.user_id) {
                    var del = document.createElement('button');
                    del.className = 'comment-delete';
                    del.textContent = 'Delete';
                    del.addEventListener('click', function () { removeComment(c.id); });
                    header.appendChild(del);
                }
                content.appendChild(header);

                var text = document.createElement('div');
                text.className = 'comment-text';
                text.textContent = c.text;
                content.appendChild(text);

                var anchor = document.createElement('button');
                anchor.className = 'comment-timestamp';
                anchor.textContent = c.timestamp_formatted + ' →';
                anchor.addEventListener('click', function () { seekTo(c.timestamp); });
                content.appendChild(anchor);

                card.appendChild(content);
                return card;
            }

            function renderComments() {
                if (state.tornDown) return;
                listEl.textContent = '';
                if (state.comments.length === 0) {
                    var empty = document.createElement('div');
                    empty.className = 'empty-comments';
                    empty.textContent = 'No comments yet. Be the first to comment!';
                    listEl.appendChild(empty);
                    return;
                }
                state.comments.forEach(function (c) {
                    listEl.appendChild(buildCard(c));
                });
            }

            function renderAuthState() {
                if (state.tornDown) return;
                if (state.me) {
                    formSection.classList.remove('hidden');
                    loginPrompt.classList.add('hidden');
                    navSignedOut.classList.add('hidden');
                    navSignedIn.classList.remove('hidden');
                    navUsername.textContent = state.me.name;
                } else {
                    formSection.classList.add('hidden');
                    loginPrompt.classList.remove('hidden');
                    navSignedOut.classList.remove('hidden');
                    navSignedIn.classList.add('hidden');
                }
            }

            function loadComments() {
                fetch('/api/video-comments?video_id=' + encodeURIComponent(videoId)).then(function (res) {
                    if (!res.ok) throw new Error('list failed');
                    return res.json();
                }).then(function (comments) {
                    if (state.tornDown) return;
                    state.comments = comments;
                    renderComments();
                }).catch(function () {
                    notify('Failed to load comments.');
                });
            }

            function removeComment(id) {
                if (!window.confirm('Are you sure you want to delete this comment?')) return;
                fetch('/api/video-comments/' + id, {
                    method: 'DELETE',
                    headers: authHeaders()
                }).then(function (res) {
                    if (!res.ok) throw new Error('delete failed');
                    if (state.tornDown) return;
                    state.comments = state.comments.filter(function (c) { return c.id !== id; });
                    renderComments();
                }).catch(function () {
                    notify('Failed to delete comment. Please try again.');
                });
            }

            form.addEventListener('submit', function (e) {
                e.preventDefault();
                var text = input.value.trim();
                if (!text) return;
                // record the position at submit time, not the displayed label
                state.adapter.getCurrentTime().then(function (seconds) {
                    var headers = authHeaders();
                    headers['Content-Type'] = 'application/json';
                    return fetch('/api/video-comments', {
                        method: 'POST',
                        headers: headers,
                        body: JSON.stringify({ video_id: videoId, comment: text, timestamp: seconds })
                    });
                }).then(function (res) {
                    if (!res.ok) throw new Error('create failed');
                    return res.json();
                }).then(function (created) {
                    if (state.tornDown) return;
                    input.value = '';
                    state.comments.push(created);
                    state.comments.sort(function (a, b) { return a.timestamp - b.timestamp; });
                    renderComments();
                }).catch(function () {
                    notify('Failed to submit comment. Please try again.');
                });
            });

            // the pushed timeupdate position can lag behind the instant of
            // composing; focusing the input refreshes to the live position
            input.addEventListener('focus', function () {
                state.adapter.getCurrentTime().then(function (seconds) {
                    if (!state.tornDown) timeLabel.textContent = fmtTime(seconds);
                }).catch(function () {
                    notify('Could not read the player position.');
                });
            });

            logoutBtn.addEventListener('click', function () {
                fetch('/api/auth/logout', { method: 'POST' }).catch(function () {}).then(function () {
                    localStorage.removeItem('access_token');
                    window.location.reload();
                });
            });

            state.adapter = createPlayer(playerContainer, videoId, {
                onReady: function () {
                    if (!state.tornDown) playerLoading.classList.add('hidden');
                },
                onTimeUpdate: function (seconds) {
                    if (state.tornDown) return;
                    timeLabel.textContent = fmtTime(seconds);
                },
                onError: function () {
                    notify('Video player failed to load.');
                }
            });

            window.addEventListener('pagehide', function () {
                state.tornDown = true;
                state.adapter.destroy().catch(function () {});
            });

            loadMe().then(function (me) {
                if (state.tornDown) return;
                state.me = me;
                renderAuthState();
                renderComments();
            });
            loadComments();
        }
`
