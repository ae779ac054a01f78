// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package flagset

// 🗺️ commands maps each host command to its flag table. Keywords are the
// friendly names the facade layer uses; tokens follow the host's command
// reference. Plugin-registered flags are intentionally absent: unknown
// keywords fail fast rather than being forwarded blind.
var commands = map[string]map[string]Spec{
	"file": {
		"open":               {Short: "o", Long: "open", Modes: InCreate},
		"import":             {Short: "i", Long: "import", Modes: InCreate},
		"reference":          {Short: "r", Long: "reference", Modes: InCreate | InQuery},
		"save":               {Short: "s", Long: "save", Modes: InCreate},
		"rename":             {Short: "rn", Long: "rename", Modes: InCreate | InQuery},
		"newFile":            {Short: "new", Long: "new", Modes: InCreate},
		"exportAll":          {Short: "ea", Long: "exportAll", Modes: InCreate},
		"exportSelected":     {Short: "es", Long: "exportSelected", Modes: InCreate},
		"exportAsReference":  {Short: "er", Long: "exportAsReference", Modes: InCreate},
		"importReference":    {Short: "ir", Long: "importReference", Modes: InCreate},
		"loadReference":      {Short: "lr", Long: "loadReference", Modes: InCreate | InQuery},
		"unloadReference":    {Short: "ur", Long: "unloadReference", Modes: InCreate},
		"removeReference":    {Short: "rr", Long: "removeReference", Modes: InCreate},
		"force":              {Short: "f", Long: "force", Modes: InCreate},
		"type":               {Short: "typ", Long: "type", Modes: InCreate | InQuery},
		"options":            {Short: "op", Long: "options", Modes: InCreate | InQuery},
		"preserveReferences": {Short: "pr", Long: "preserveReferences", Modes: InCreate},
		"namespace":          {Short: "ns", Long: "namespace", Modes: InCreate | InQuery | InEdit},
		"referenceNode":      {Short: "rfn", Long: "referenceNode", Modes: InQuery},
		"sceneName":          {Short: "sn", Long: "sceneName", Modes: InQuery},
		"modified":           {Short: "mf", Long: "modified", Modes: InQuery | InEdit},
		"anyModified":        {Short: "amf", Long: "anyModified", Modes: InQuery},
		"exists":             {Short: "ex", Long: "exists", Modes: InQuery},
		"expandName":         {Short: "exn", Long: "expandName", Modes: InQuery},
		"location":           {Short: "loc", Long: "location", Modes: InQuery},
		"list":               {Short: "l", Long: "list", Modes: InQuery},
		"prompt":             {Short: "pmt", Long: "prompt", Modes: InCreate | InQuery | InEdit},
		"defaultNamespace":   {Short: "dns", Long: "defaultNamespace", Modes: InCreate | InQuery},
		"deferReference":     {Short: "dr", Long: "deferReference", Modes: InCreate | InQuery},
		"groupReference":     {Short: "gr", Long: "groupReference", Modes: InCreate},
		"groupName":          {Short: "gn", Long: "groupName", Modes: InCreate},
		"returnNewNodes":     {Short: "rnn", Long: "returnNewNodes", Modes: InCreate},
		"sharedNodes":        {Short: "shd", Long: "sharedNodes", Modes: InCreate},
		"strict":             {Short: "str", Long: "strict", Modes: InCreate},
	},
	"namespace": {
		"add":                      {Short: "add", Long: "add", Modes: InCreate},
		"removeNamespace":          {Short: "rm", Long: "removeNamespace", Modes: InCreate},
		"mergeNamespaceWithRoot":   {Short: "mnr", Long: "mergeNamespaceWithRoot", Modes: InCreate},
		"mergeNamespaceWithParent": {Short: "mnp", Long: "mergeNamespaceWithParent", Modes: InCreate},
		"deleteNamespaceContent":   {Short: "dnc", Long: "deleteNamespaceContent", Modes: InCreate},
		"exists":                   {Short: "ex", Long: "exists", Modes: InCreate},
		"setNamespace":             {Short: "set", Long: "setNamespace", Modes: InCreate},
		"moveNamespace":            {Short: "mv", Long: "moveNamespace", Modes: InCreate},
		"rename":                   {Short: "ren", Long: "rename", Modes: InCreate},
		"parent":                   {Short: "p", Long: "parent", Modes: InCreate},
		"force":                    {Short: "f", Long: "force", Modes: InCreate},
		"relativeNames":            {Short: "rel", Long: "relativeNames", Modes: InCreate | InQuery},
	},
	"namespaceInfo": {
		"currentNamespace":   {Short: "cur", Long: "currentNamespace", Modes: InCreate},
		"listNamespace":      {Short: "ls", Long: "listNamespace", Modes: InCreate},
		"listOnlyNamespaces": {Short: "lon", Long: "listOnlyNamespaces", Modes: InCreate},
		"parent":             {Short: "p", Long: "parent", Modes: InCreate},
		"fullName":           {Short: "fn", Long: "fullName", Modes: InCreate},
		"absoluteName":       {Short: "an", Long: "absoluteName", Modes: InCreate},
		"recurse":            {Short: "r", Long: "recurse", Modes: InCreate},
	},
	"referenceQuery": {
		"filename":          {Short: "f", Long: "filename", Modes: InCreate},
		"shortName":         {Short: "shn", Long: "shortName", Modes: InCreate},
		"unresolvedName":    {Short: "un", Long: "unresolvedName", Modes: InCreate},
		"withoutCopyNumber": {Short: "wcn", Long: "withoutCopyNumber", Modes: InCreate},
		"namespace":         {Short: "ns", Long: "namespace", Modes: InCreate},
		"nodes":             {Short: "n", Long: "nodes", Modes: InCreate},
		"isLoaded":          {Short: "il", Long: "isLoaded", Modes: InCreate},
		"isDeferred":        {Short: "dr", Long: "isDeferred", Modes: InCreate},
		"isNodeReferenced":  {Short: "inr", Long: "isNodeReferenced", Modes: InCreate},
		"referenceNode":     {Short: "rfn", Long: "referenceNode", Modes: InCreate},
		"parent":            {Short: "p", Long: "parent", Modes: InCreate},
		"child":             {Short: "ch", Long: "child", Modes: InCreate},
		"topReference":      {Short: "tr", Long: "topReference", Modes: InCreate},
		"editStrings":       {Short: "es", Long: "editStrings", Modes: InCreate},
		"editCommand":       {Short: "ec", Long: "editCommand", Modes: InCreate},
		"failedEdits":       {Short: "fld", Long: "failedEdits", Modes: InCreate},
		"successfulEdits":   {Short: "scs", Long: "successfulEdits", Modes: InCreate},
	},
	"referenceEdit": {
		"removeEdits":     {Short: "r", Long: "removeEdits", Modes: InCreate},
		"editCommand":     {Short: "ec", Long: "editCommand", Modes: InCreate},
		"failedEdits":     {Short: "fld", Long: "failedEdits", Modes: InCreate},
		"successfulEdits": {Short: "scs", Long: "successfulEdits", Modes: InCreate},
		"onReferenceNode": {Short: "orn", Long: "onReferenceNode", Modes: InCreate},
	},
	"workspace": {
		"rootDirectory":  {Short: "rd", Long: "rootDirectory", Modes: InQuery},
		"directory":      {Short: "dir", Long: "directory", Modes: InQuery | InEdit},
		"fileRule":       {Short: "fr", Long: "fileRule", Modes: InCreate | InQuery},
		"fileRuleList":   {Short: "frl", Long: "fileRuleList", Modes: InQuery},
		"expandName":     {Short: "en", Long: "expandName", Modes: InQuery},
		"fullName":       {Short: "fn", Long: "fullName", Modes: InQuery},
		"projectPath":    {Short: "pp", Long: "projectPath", Modes: InQuery},
		"create":         {Short: "cr", Long: "create", Modes: InCreate},
		"saveWorkspace":  {Short: "s", Long: "saveWorkspace", Modes: InCreate},
		"openWorkspace":  {Short: "o", Long: "openWorkspace", Modes: InCreate},
		"update":         {Short: "u", Long: "update", Modes: InCreate},
		"list":           {Short: "l", Long: "list", Modes: InQuery},
		"listWorkspaces": {Short: "lw", Long: "listWorkspaces", Modes: InQuery},
	},
	"fileInfo": {
		"remove": {Short: "rm", Long: "remove", Modes: InCreate},
	},
	"undoInfo": {
		"openChunk":         {Short: "oc", Long: "openChunk", Modes: InCreate},
		"closeChunk":        {Short: "cc", Long: "closeChunk", Modes: InCreate},
		"chunkName":         {Short: "cn", Long: "chunkName", Modes: InCreate | InQuery},
		"state":             {Short: "st", Long: "state", Modes: InCreate | InQuery},
		"stateWithoutFlush": {Short: "swf", Long: "stateWithoutFlush", Modes: InCreate | InQuery},
		"infinity":          {Short: "inf", Long: "infinity", Modes: InCreate | InQuery},
		"length":            {Short: "ln", Long: "length", Modes: InCreate | InQuery},
		"undoName":          {Short: "un", Long: "undoName", Modes: InQuery},
		"redoName":          {Short: "rn", Long: "redoName", Modes: InQuery},
		"undoQueueEmpty":    {Short: "uqe", Long: "undoQueueEmpty", Modes: InQuery},
		"printQueue":        {Short: "pq", Long: "printQueue", Modes: InQuery},
	},
	"pluginInfo": {
		"loaded":      {Short: "l", Long: "loaded", Modes: InQuery},
		"listPlugins": {Short: "ls", Long: "listPlugins", Modes: InQuery},
		"version":     {Short: "v", Long: "version", Modes: InQuery},
		"vendor":      {Short: "vd", Long: "vendor", Modes: InQuery},
		"path":        {Short: "p", Long: "path", Modes: InQuery},
		"name":        {Short: "n", Long: "name", Modes: InQuery},
		"autoload":    {Short: "a", Long: "autoload", Modes: InQuery | InEdit},
		"dependNode":  {Short: "dn", Long: "dependNode", Modes: InQuery},
	},
	"translator": {
		"extension":       {Short: "ext", Long: "extension", Modes: InQuery},
		"filter":          {Short: "f", Long: "filter", Modes: InQuery},
		"list":            {Short: "l", Long: "list", Modes: InQuery},
		"loaded":          {Short: "ld", Long: "loaded", Modes: InQuery},
		"readSupport":     {Short: "rs", Long: "readSupport", Modes: InQuery},
		"writeSupport":    {Short: "ws", Long: "writeSupport", Modes: InQuery},
		"defaultOptions":  {Short: "do", Long: "defaultOptions", Modes: InQuery | InEdit},
		"defaultFileRule": {Short: "dfr", Long: "defaultFileRule", Modes: InQuery},
	},
}
