package page

// playerJS wraps the Vimeo Player SDK behind a small adapter. The page never
// touches the SDK object directly: it gets back getCurrentTime/seek/destroy
// plus ready/timeupdate callbacks. The destroyed flag guards against SDK
// events arriving after teardown, and rebinding to another video goes through
// destroy() first so no listeners or iframes leak.
//
// Expects a global Vimeo from https://player.vimeo.com/api/player.js.
const playerJS = `
        function createPlayer(container, videoId, handlers) {
            var sdkPlayer = new Vimeo.Player(container, {
                id: parseInt(videoId, 10),
                responsive: true
            });
            var destroyed = false;

            sdkPlayer.ready().then(function () {
                if (destroyed) return;
                handlers.onReady();
                // emit the current position once immediately; after that the
                // native timeupdate events take over
                return sdkPlayer.getCurrentTime().then(function (seconds) {
                    if (!destroyed) handlers.onTimeUpdate(seconds);
                });
            }).catch(function (err) {
                if (!destroyed && handlers.onError) handlers.onError(err);
            });

            sdkPlayer.on('timeupdate', function (data) {
                if (!destroyed) handlers.onTimeUpdate(data.seconds);
            });

            return {
                getCurrentTime: function () {
                    return sdkPlayer.getCurrentTime();
                },
                seek: function (seconds) {
                    return sdkPlayer.setCurrentTime(seconds);
                },
                destroy: function () {
                    destroyed = true;
                    return sdkPlayer.destroy();
                }
            };
        }
`
