package svg

import (
	"html/template"
	"io"

	"gantt-chart/internal/gantt"
)

// PageData parameterizes the interactive HTML page.
type PageData struct {
	Title string
	// APIBase is the view resource the page talks back to, e.g. /api/v1/views/<id>.
	APIBase string
	// ScrollLeft is applied once to the scroll container after load.
	ScrollLeft float64
	Scene      gantt.Scene
}

var pageTmpl = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body{margin:0;font-family:system-ui,-apple-system,sans-serif;background:#f9fafb}
header{padding:12px 16px;color:#1f2937}
#chart{overflow:auto;margin:0 16px;border:1px solid #e5e7eb;border-radius:8px;background:#fff}
.warnings{margin:8px 16px;color:#92400e;font-size:13px}
</style>
</head>
<body>
<header><strong>{{.Title}}</strong></header>
{{if .Scene.Warnings}}<ul class="warnings">{{range .Scene.Warnings}}<li>{{.Message}}</li>{{end}}</ul>{{end}}
<div id="chart" data-api="{{.APIBase}}" data-scroll-left="{{.ScrollLeft}}">{{.SVG}}</div>
<script>
(function(){
  var box=document.getElementById("chart"), api=box.dataset.api;
  function post(path,body){
    return fetch(api+path,{method:"POST",headers:{"Content-Type":"application/json"},body:JSON.stringify(body||{})});
  }
  function redraw(){
    return fetch(api+"/render?format=svg").then(function(r){return r.text()}).then(function(s){box.innerHTML=s});
  }
  setTimeout(function(){box.scrollLeft=parseFloat(box.dataset.scrollLeft)||0},100);
  box.addEventListener("click",function(e){
    var item=e.target.closest("[data-toggle]");
    var hit=item?null:e.target.closest(".bar-progress,.rail-label");
    if(hit){post("/tasks/"+encodeURIComponent(hit.dataset.taskId)+"/click");return}
    if(!item)return;
    var path=item.dataset.toggle==="group"?"/groups/"+encodeURIComponent(item.dataset.groupKey):"/tasks/"+encodeURIComponent(item.dataset.taskId);
    post(path+"/toggle").then(redraw);
  });
  box.addEventListener("wheel",function(e){
    e.preventDefault();
    var r=box.getBoundingClientRect();
    post("/viewport",{gesture:"wheel",delta_y:e.deltaY,delta_mode:e.deltaMode,x:e.clientX-r.left-250,y:e.clientY-r.top-60}).then(redraw);
  },{passive:false});
  var drag=null;
  box.addEventListener("mousedown",function(e){drag={x:e.clientX,y:e.clientY}});
  window.addEventListener("mouseup",function(e){
    if(!drag)return;
    var dx=e.clientX-drag.x, dy=e.clientY-drag.y; drag=null;
    if(dx||dy)post("/viewport",{gesture:"pan",dx:dx,dy:dy}).then(redraw);
  });
})();
</script>
</body>
</html>
`))

// WritePage writes a standalone HTML page hosting the chart. The page wires
// rail toggles, bar and label clicks, wheel zoom and drag pan back to the view API.
func WritePage(w io.Writer, d PageData) error {
	return pageTmpl.Execute(w, struct {
		PageData
		SVG template.HTML
	}{d, template.HTML(String(d.Scene))})
}
