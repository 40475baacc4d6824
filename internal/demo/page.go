package demo

// indexHTML is the demo page: two inputs feeding the per-session store
// over the WebSocket, three outputs driven by field-scoped bindings. The
// change counters under each output make the selective refresh visible:
// typing in one field only ever bumps that field's counter (and the full
// name's), never the other field's.
const indexHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Substrate Demo - Selector Subscriptions</title>
<style>
body {
	font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
	max-width: 700px;
	margin: 0 auto;
	padding: 2rem;
	background: #1a1a2e;
	color: #eee;
}
h1 { color: #6ee7b7; margin-bottom: 0.5rem; }
.subtitle { color: #888; margin-bottom: 2rem; }
.card {
	background: #16213e;
	border-radius: 12px;
	padding: 1.5rem;
	margin-bottom: 1.5rem;
}
label { display: block; color: #888; margin-bottom: 0.25rem; }
input {
	width: 100%;
	padding: 0.5rem;
	border-radius: 8px;
	border: 1px solid #333;
	background: #0f3460;
	color: #eee;
	margin-bottom: 1rem;
}
.value { font-size: 1.5rem; color: #6ee7b7; min-height: 2rem; }
.count { color: #888; font-size: 0.8rem; }
.status-connected { color: #22c55e; }
.status-disconnected { color: #ef4444; }
</style>
</head>
<body>
<h1>Substrate Demo</h1>
<p class="subtitle">
	Status: <span id="status" class="status-disconnected">Connecting...</span> -
	each output below is a separate binding; its counter only moves when its own slice changes.
</p>

<div class="card">
	<label for="first">First name</label>
	<input id="first" autocomplete="off">
	<label for="last">Last name</label>
	<input id="last" autocomplete="off">
</div>

<div class="card">
	<div>First binding: <span id="out-first" class="value"></span></div>
	<div class="count">changes: <span id="count-first">0</span></div>
	<div>Last binding: <span id="out-last" class="value"></span></div>
	<div class="count">changes: <span id="count-last">0</span></div>
	<div>Full name binding: <span id="out-full" class="value"></span></div>
	<div class="count">changes: <span id="count-full">0</span></div>
</div>

<script>
(function() {
	const counts = { first: 0, last: 0, full: 0 };
	const proto = location.protocol === 'https:' ? 'wss:' : 'ws:';
	const ws = new WebSocket(proto + '//' + location.host + '/ws');

	ws.onopen = function() {
		const el = document.getElementById('status');
		el.textContent = 'Connected';
		el.className = 'status-connected';
	};
	ws.onclose = function() {
		const el = document.getElementById('status');
		el.textContent = 'Disconnected';
		el.className = 'status-disconnected';
	};
	ws.onmessage = function(msg) {
		const update = JSON.parse(msg.data);
		document.getElementById('out-' + update.target).textContent = update.value;
		counts[update.target]++;
		document.getElementById('count-' + update.target).textContent = counts[update.target];
	};

	for (const field of ['first', 'last']) {
		document.getElementById(field).addEventListener('input', function(e) {
			if (ws.readyState === WebSocket.OPEN) {
				ws.send(JSON.stringify({ field: field, value: e.target.value }));
			}
		});
	}
})();
</script>
</body>
</html>
`
